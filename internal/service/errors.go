// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Domain errors mapped to HTTP statuses by the transport layer.
var (
	// ErrUnauthorized covers a missing or unknown token as well as a wrong
	// username or password. Callers cannot tell the cases apart.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a contact does not exist under the owner.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when the username is already taken.
	ErrConflict = errors.New("username already exists")
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrUnsupportedTokenMode  = errors.New("unsupported token mode")
	ErrInvalidPageSize       = errors.New("search page size must be positive")
)
