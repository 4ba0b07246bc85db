// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// contact keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "errors" field of HTTP response bodies or into log entries.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidGzip is returned when a gzip-encoded request body cannot be
	// decompressed.
	MsgInvalidGzip = "Invalid gzip data"

	// MsgUnauthorized is returned for a missing, unknown or revoked token and
	// for a failed login. The same text is used for an unknown username and a
	// wrong password.
	MsgUnauthorized = "Unauthorized"

	// MsgContactNotFound is returned when a contact does not exist or is owned
	// by another user.
	MsgContactNotFound = "Contact is not found"

	// MsgUsernameConflict is returned on registration with a taken username.
	MsgUsernameConflict = "Username already exists"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not Found"

	// MsgMethodNotAllowed is returned for a known route called with an
	// unsupported method.
	MsgMethodNotAllowed = "Method Not Allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs. No detail is exposed.
	MsgInternalServerError = "Internal Server Error"
)
