// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert or update of a lead
	// violates the unique constraint on leads.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrLeadNotFound is returned when no lead matches the given email, or
	// when an update keyed by email affects no rows.
	ErrLeadNotFound = errors.New("lead was not found")

	// ErrNcmNotFound is returned when neither an exact nor a prefix match
	// exists for the requested code.
	ErrNcmNotFound = errors.New("ncm was not found")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are wrapped together with the
// driver error so both can be matched with [errors.Is].
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrAcquiringConnection is returned when no connection can be taken
	// from the pool.
	ErrAcquiringConnection = errors.New("failed to acquire connection")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails for a reason other than a known constraint violation.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan row")
)
