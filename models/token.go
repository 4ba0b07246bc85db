// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Token is a session credential issued on login.
//
// SignedString is the value clients send back in the Authorization header.
// Depending on the configured token mode it is either an opaque random string
// or a compact JWS.
type Token struct {
	// SignedString is the credential returned to the client.
	SignedString string `json:"token"`

	// Username identifies the user the token was issued for.
	Username string `json:"-"`
}

// String returns the credential value.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
