// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and their session tokens.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByToken(ctx context.Context, token string) (models.User, error)
	UpdateUser(ctx context.Context, username string, update models.UserUpdate) (models.User, error)
	SetToken(ctx context.Context, username string, token *string) error
}

// ContactRepository persists contacts. Every method is scoped to a single
// owner.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	FindContact(ctx context.Context, userID, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID int64) error
	SearchContacts(ctx context.Context, search models.ContactSearch) ([]models.Contact, error)
	CountContacts(ctx context.Context, search models.ContactSearch) (int64, error)
}

// ContactStorage is the high-level contact store used by the service layer.
// It delegates single-record operations to a [ContactRepository] and
// assembles paginated search results.
type ContactStorage interface {
	Create(ctx context.Context, contact models.Contact) (models.Contact, error)
	Get(ctx context.Context, userID, contactID int64) (models.Contact, error)
	Update(ctx context.Context, contact models.Contact) (models.Contact, error)
	Delete(ctx context.Context, userID, contactID int64) error
	Search(ctx context.Context, search models.ContactSearch) (models.ContactPage, error)
}
