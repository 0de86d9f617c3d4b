// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrContactNotFound is returned when no contact matches the requested
	// id (or lookup field) for the given owner. A contact owned by another
	// user is reported the same way.
	ErrContactNotFound = errors.New("contact not found")

	// ErrUserNotFound is returned when no user matches the requested email
	// or id.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when signup collides with the
	// unique email constraint.
	ErrEmailAlreadyExists = errors.New("account with this email already exists")

	// ErrInvalidLookupField is returned when a single-field lookup names a
	// column outside the whitelist.
	ErrInvalidLookupField = errors.New("invalid contact lookup field")

	// ErrStorageUnavailable wraps every failure caused by a lost or refused
	// database connection.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrAvatarNotSaved is returned when an avatar upload to the object
	// store or the avatar directory fails.
	ErrAvatarNotSaved = errors.New("avatar was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a statement
	// with a RETURNING clause fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an UPDATE without a
	// RETURNING clause fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iteration over a result set fails
	// mid-way.
	ErrScanningRows = errors.New("failed to scan rows")
)
