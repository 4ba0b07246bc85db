// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the request models of
// the API.
//
// Rules live next to the models as `validate` struct tags and are evaluated
// by [ContactKeeperValidator]. A failed validation produces a
// *[ValidationError] carrying every violated field at once, so that callers
// can report all problems in a single response.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input against its rules.
	Validate(context.Context, any) error
}
