// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Dialect holds the SQL differences between the supported databases.
type Dialect struct {
	// Name is the goose dialect name.
	Name string
	// Placeholder is the bind variable format of the driver.
	Placeholder sq.PlaceholderFormat
}

var (
	// PostgresDialect uses $n placeholders.
	PostgresDialect = Dialect{Name: migrations.DialectPostgres, Placeholder: sq.Dollar}
	// SQLiteDialect uses ? placeholders.
	SQLiteDialect = Dialect{Name: migrations.DialectSQLite, Placeholder: sq.Question}
)

// DB wraps *sql.DB together with the dialect and error classifier of the
// underlying driver.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a database connection for cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies all pending up-migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.Name)
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	db.logger.Info().Str("func", "*DB.Close").Msg("closing database connection")
	return db.DB.Close()
}

// builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.Placeholder)
}

// rebind converts a query written with ? placeholders to the dialect's
// placeholder format.
func (db *DB) rebind(query string) string {
	q, err := db.dialect.Placeholder.ReplacePlaceholders(query)
	if err != nil {
		return query
	}
	return q
}

// classify reports how the driver error should be treated.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}
