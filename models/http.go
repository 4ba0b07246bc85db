// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /api/users.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
}

// UpdateUserRequest is the body of PATCH /api/users/current.
// Absent fields mean "no change"; present fields must be non-empty.
type UpdateUserRequest struct {
	// Username identifies the user being updated. It is taken from the
	// authenticated identity, never from the request body.
	Username string `json:"-"`

	Name     *string `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	Password *string `json:"password,omitempty" validate:"omitnil,min=1,max=72"`
}
