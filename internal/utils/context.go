// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the authenticated user is stored in the
// request context by the auth middleware.
//
//	ctx := context.WithValue(ctx, utils.UserCtxKey, user)
var UserCtxKey = contextKey("user")

// GetUserFromContext retrieves the authenticated user from the context.
// ok is false when no user is stored or the value has an unexpected type.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// WithUser returns a copy of ctx carrying user under [UserCtxKey].
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}
