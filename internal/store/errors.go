// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrContactNotFound is returned when a query, update or delete targets a
	// contact that does not exist under the given owner.
	ErrContactNotFound = errors.New("contact was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a statement
	// with a RETURNING clause fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// without result rows fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
