// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user is created or updated with
	// an email that already belongs to another account.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup by email or ID matches no user.
	ErrUserNotFound = errors.New("user not found")

	// ErrItemNotFound is returned when no item matches both the requested ID
	// and the acting owner. A foreign item is indistinguishable from a
	// missing one.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemNameAlreadyExists is returned when an insert or update would
	// duplicate an item name.
	ErrItemNameAlreadyExists = errors.New("the item name must be unique")

	// ErrConstraintViolation is returned for any other schema constraint
	// (not-null, check, foreign key) rejected by the database.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrUnsupportedDSN is returned when the DSN matches no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// Image storage errors.
var (
	// ErrSavingImage is returned when an uploaded image cannot be written.
	ErrSavingImage = errors.New("error saving image")

	// ErrRemovingImage is returned when a stored image cannot be deleted.
	ErrRemovingImage = errors.New("error removing image")

	// ErrInvalidImageRef is returned for a reference that does not point
	// inside the image storage.
	ErrInvalidImageRef = errors.New("invalid image reference")
)
