// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewConnectPostgres opens and pings a PostgreSQL connection through the pgx
// database/sql driver.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open(config.DriverPostgres, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            PostgresDialect,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not
// *pgconn.PgError are [Unclassified].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresError(err)
	if code == "" {
		return Unclassified
	}

	return ClassifyPgErrorCode(code)
}

// ClassifyPgErrorCode maps a PostgreSQL error code to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgErrorCode(code string) ErrorClassification {
	switch code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	}

	if pgerrcode.IsConnectionException(code) ||
		pgerrcode.IsTransactionRollback(code) ||
		code == pgerrcode.CannotConnectNow {
		return Retryable
	}

	return Unclassified
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
