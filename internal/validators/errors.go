// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var ErrUnsupportedType = errors.New("unsupported type for validation")

// ValidationError reports every field that failed validation.
// Fields maps the JSON field name to a human-readable message.
type ValidationError struct {
	Fields map[string]string
}

// Error lists the failed fields in a stable order.
func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidationError reports whether err wraps a [ValidationError] and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
