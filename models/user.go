// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account entity used for authentication and as the owner
// of contacts. Sensitive fields are never serialized to JSON.
type User struct {
	// UserID is the internal surrogate key of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique, immutable login of the user.
	Username string `json:"username"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password holds the bcrypt hash of the user's password.
	// Plaintext never reaches this field outside the registration request.
	Password string `json:"-"`

	// Token is the current session token. Nil means the user is logged out.
	Token *string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial update of a user profile.
// Nil fields are left untouched.
type UserUpdate struct {
	// Name replaces the stored display name when non-nil.
	Name *string

	// Password replaces the stored password hash when non-nil.
	// The value must already be hashed.
	Password *string
}

// IsEmpty reports whether the update carries no changes.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Password == nil
}
