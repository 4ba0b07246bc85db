// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/mattn/go-sqlite3"
)

// sqliteUnicodeDriver is go-sqlite3 with LOWER replaced by [unicodeLower].
// The built-in LOWER folds ASCII letters only, which breaks case-insensitive
// search for names like "Élodie".
const sqliteUnicodeDriver = "sqlite3_unicode"

func init() {
	sql.Register(sqliteUnicodeDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", unicodeLower, true)
		},
	})
}

// unicodeLower lower-cases TEXT values and passes NULL and other types
// through unchanged.
func unicodeLower(v any) any {
	if s, ok := v.(string); ok {
		return strings.ToLower(s)
	}
	return v
}

// NewConnectSQLite opens and pings a SQLite database. Foreign keys are
// enabled on every connection. In-memory databases are limited to a single
// connection so that all queries see the same database.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(sqliteUnicodeDriver, withForeignKeys(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if isInMemory(cfg.DSN) {
		conn.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            SQLiteDialect,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}, nil
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

func isInMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator] using SQLite extended result codes.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return Unclassified
}
