// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Contact is a single address-book record owned by exactly one user.
// Optional fields are pointers so that absent values round-trip as JSON null.
type Contact struct {
	// ID is the surrogate key of the contact.
	ID int64 `json:"id"`

	// UserID references the owning user. It is immutable and never exposed.
	UserID int64 `json:"-"`

	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=200"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}
