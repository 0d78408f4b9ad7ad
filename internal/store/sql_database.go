// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/craft-catalog/internal/config"
	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/migrations"
)

// DB wraps a *sql.DB together with the dialect-specific pieces every
// repository needs: the query builder and the driver error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            queryBuilder
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, classificator ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            newQueryBuilder(dialect),
		errorClassificator: classificator,
		logger:             log,
	}
}

// NewConnect opens the database selected by the DSN form: "sqlite://" and
// "file:" DSNs go to SQLite, anything else to PostgreSQL through pgx.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case cfg.DSN == "":
		return nil, ErrUnsupportedDSN
	case isSQLiteDSN(cfg.DSN):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return NewConnectPostgres(ctx, cfg, log)
	}
}

func isSQLiteDSN(dsn string) bool {
	return strings.HasPrefix(dsn, sqliteScheme) || strings.HasPrefix(dsn, sqliteFilePrefix)
}

// Dialect returns the migration dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations of the connection dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// constraintError translates a driver constraint failure into a store
// sentinel. It returns nil when err is not a constraint failure.
func (db *DB) constraintError(err error) error {
	if db.errorClassificator == nil {
		return nil
	}

	classification, target := db.errorClassificator.Classify(err)
	switch classification {
	case UniqueViolation:
		switch {
		case strings.Contains(target, "email"):
			return fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
		case strings.Contains(target, "item_name"):
			return fmt.Errorf("%w: %w", ErrItemNameAlreadyExists, err)
		}
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	case NotNullViolation, CheckViolation, ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}

	return nil
}

// queryError wraps a failed statement: constraint failures become store
// sentinels, everything else is an [ErrExecutingQuery].
func (db *DB) queryError(err error) error {
	if constraintErr := db.constraintError(err); constraintErr != nil {
		return constraintErr
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
