// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the caller how a failed database operation
// should be treated.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks transaction rollbacks (serialization failure,
	// deadlock) that may succeed if attempted again.
	Retryable

	// Unavailable marks a lost, refused or shut down connection.
	Unavailable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
// PostgreSQL server errors are delegated to [ClassifyPgError]. Connection
// establishment failures, network errors and [driver.ErrBadConn] are
// [Unavailable]. Everything else is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connectErr) || errors.As(err, &netErr) || errors.Is(err, driver.ErrBadConn) {
		return Unavailable
	}

	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
//   - Class 08 (connection exceptions) and 57P01..57P03 (shutdown, cannot
//     connect now) are [Unavailable].
//   - Class 40 (transaction rollback) is [Retryable].
//   - Anything else is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code):
		return Unavailable
	case pgErr.Code == pgerrcode.AdminShutdown,
		pgErr.Code == pgerrcode.CrashShutdown,
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Unavailable
	case pgerrcode.IsTransactionRollback(pgErr.Code):
		return Retryable
	}

	return NonRetryable
}
