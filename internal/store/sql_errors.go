// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It names the kind of schema constraint a
// failed statement violated.
type ErrorClassification int

const (
	// Unclassified covers every error that is not a constraint violation.
	Unclassified ErrorClassification = iota
	UniqueViolation
	NotNullViolation
	CheckViolation
	ForeignKeyViolation
)

// ErrorClassificator inspects a driver error and reports the violated
// constraint kind together with its target (constraint name or
// "table.column").
type ErrorClassificator interface {
	Classify(err error) (ErrorClassification, string)
}
