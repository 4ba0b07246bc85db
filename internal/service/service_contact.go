// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type contactService struct {
	contactStorage store.ContactStorage
	pageSize       int

	logger *logger.Logger
}

// NewContactService constructs a [ContactService] whose searches return
// pages of pageSize contacts.
func NewContactService(contactStorage store.ContactStorage, pageSize int, logger *logger.Logger) (ContactService, error) {
	if pageSize < 1 {
		return nil, ErrInvalidPageSize
	}

	return &contactService{
		contactStorage: contactStorage,
		pageSize:       pageSize,
		logger:         logger,
	}, nil
}

func (s *contactService) Create(ctx context.Context, contact models.Contact) (models.Contact, error) {
	contact.ID = 0

	created, err := s.contactStorage.Create(ctx, contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("contact creation failed: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("contact_id", created.ID).Msg("contact created")
	return created, nil
}

func (s *contactService) Get(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	contact, err := s.contactStorage.Get(ctx, userID, contactID)
	if err != nil {
		return models.Contact{}, mapContactError(err)
	}

	return contact, nil
}

func (s *contactService) Update(ctx context.Context, contact models.Contact) (models.Contact, error) {
	updated, err := s.contactStorage.Update(ctx, contact)
	if err != nil {
		return models.Contact{}, mapContactError(err)
	}

	return updated, nil
}

func (s *contactService) Delete(ctx context.Context, userID, contactID int64) error {
	if err := s.contactStorage.Delete(ctx, userID, contactID); err != nil {
		return mapContactError(err)
	}

	logger.FromContext(ctx).Debug().Int64("contact_id", contactID).Msg("contact deleted")
	return nil
}

// Search returns one page of the owner's contacts. The page size is fixed
// by configuration and cannot be chosen by the caller.
func (s *contactService) Search(ctx context.Context, search models.ContactSearch) (models.ContactPage, error) {
	search.Size = s.pageSize
	if search.Page < 1 {
		search.Page = 1
	}

	page, err := s.contactStorage.Search(ctx, search)
	if err != nil {
		return models.ContactPage{}, fmt.Errorf("contact search failed: %w", err)
	}

	return page, nil
}

func mapContactError(err error) error {
	if errors.Is(err, store.ErrContactNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("contact storage error: %w", err)
}
