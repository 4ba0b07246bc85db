// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified is the default for unrecognised errors.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a UNIQUE or PRIMARY KEY constraint rejected the
	// statement.
	UniqueViolation

	// ForeignKeyViolation means a referenced row does not exist.
	ForeignKeyViolation

	// Retryable indicates that the failed operation may succeed if attempted
	// again (connection loss, serialization failure, locked database).
	Retryable
)

func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case Retryable:
		return "retryable"
	default:
		return "unclassified"
	}
}
