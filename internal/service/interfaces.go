// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService manages accounts and sessions.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	Get(ctx context.Context, username string) (models.User, error)
	Update(ctx context.Context, req models.UpdateUserRequest) (models.User, error)
	Logout(ctx context.Context, username string) error
}

// ContactService manages the contacts of a single authenticated owner.
// Every contact argument must carry the owner's UserID.
type ContactService interface {
	Create(ctx context.Context, contact models.Contact) (models.Contact, error)
	Get(ctx context.Context, userID, contactID int64) (models.Contact, error)
	Update(ctx context.Context, contact models.Contact) (models.Contact, error)
	Delete(ctx context.Context, userID, contactID int64) error
	Search(ctx context.Context, search models.ContactSearch) (models.ContactPage, error)
}

// TokenService issues session tokens and resolves them back to users.
type TokenService interface {
	IssueToken(ctx context.Context, user models.User) (models.Token, error)

	// ResolveIdentity returns the user whose stored token equals token.
	// Any failure to authenticate is reported as ErrUnauthorized.
	ResolveIdentity(ctx context.Context, token string) (models.User, error)
}

// AppInfoService exposes build information about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// ContactServiceWrapper defines middleware composition for ContactService.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService
}
