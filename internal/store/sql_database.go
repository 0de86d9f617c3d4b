// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/migrations"
)

// DB is the shared connection pool. It is created once at startup and
// handed to every repository.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an open pool.
func NewDB(conn *sql.DB, classificator ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: classificator,
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Check implements [HealthChecker] with a trivial round trip.
func (db *DB) Check(ctx context.Context) error {
	var one int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return db.wrapError(ErrExecutingQuery, err)
	}
	return nil
}

// wrapError wraps err with op and, for connection failures, with
// [ErrStorageUnavailable]. Transaction rollbacks that a client may retry
// are logged with retryable=true; nothing is retried here.
func (db *DB) wrapError(op, err error) error {
	if db.errorClassificator == nil {
		return fmt.Errorf("%w: %w", op, err)
	}

	switch db.errorClassificator.Classify(err) {
	case Unavailable:
		db.logger.Err(err).Str("op", op.Error()).Msg("database is unavailable")
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, op, err)
	case Retryable:
		db.logger.Warn().Err(err).
			Str("op", op.Error()).
			Str("code", postgresError(err)).
			Bool("retryable", true).
			Msg("transaction rolled back by the database")
	}
	return fmt.Errorf("%w: %w", op, err)
}

// withTx runs fn inside a transaction. The transaction is rolled back
// unless fn returns nil and the commit succeeds.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return db.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return db.wrapError(ErrCommitingTransaction, err)
	}
	return nil
}
