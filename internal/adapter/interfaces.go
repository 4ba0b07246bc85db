// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the contact keeper REST API.
//
// [ContactKeeperAdapter] hides the HTTP details: request encoding, the
// {"data": ...} envelope and the Authorization header. Non-2xx responses are
// mapped by mapHTTPError to the sentinel errors of this package so that
// callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrNotFound]
// for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ContactKeeperAdapter defines client-side access to every API operation.
type ContactKeeperAdapter interface {
	// SetToken stores the token attached to all subsequent authenticated
	// requests. Login calls it automatically.
	SetToken(token string)

	// Token returns the token currently stored in the adapter, or an empty
	// string if none has been set.
	Token() string

	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	CurrentUser(ctx context.Context) (models.User, error)
	UpdateCurrentUser(ctx context.Context, req models.UpdateUserRequest) (models.User, error)

	// Logout invalidates the token on the server and forgets it locally.
	Logout(ctx context.Context) error

	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	GetContact(ctx context.Context, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID int64) error
	SearchContacts(ctx context.Context, search models.ContactSearch) (models.ContactPage, error)

	Version(ctx context.Context) (string, error)
}
