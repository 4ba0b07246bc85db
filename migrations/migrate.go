// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the database schema and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Goose dialect names of the supported databases.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB          = errors.New("migration error: db is nil")
	ErrUnknownDialect = errors.New("migration error: unknown dialect")
	dirs              = map[string]string{DialectPostgres: "postgres", DialectSQLite: "sqlite"}
	mu                sync.Mutex
)

// Migrate applies all pending up-migrations for dialect.
// goose keeps its settings in package globals, so calls are serialized.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return ErrNilDB
	}

	dir, ok := dirs[dialect]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
