// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// contactStorage is the default implementation of [ContactStorage].
//
// It delegates single-record operations to a [ContactRepository] and
// combines the page query with the count query for searches.
type contactStorage struct {
	repository ContactRepository
	logger     *logger.Logger
}

// NewContactStorage constructs a [ContactStorage] with a SQL repository
// backed by db.
func NewContactStorage(db *DB, logger *logger.Logger) ContactStorage {
	logger.Debug().Msg("creating contact storage")

	return &contactStorage{
		repository: NewContactRepository(db, logger),
		logger:     logger,
	}
}

func (s *contactStorage) Create(ctx context.Context, contact models.Contact) (models.Contact, error) {
	return s.repository.CreateContact(ctx, contact)
}

func (s *contactStorage) Get(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	return s.repository.FindContact(ctx, userID, contactID)
}

func (s *contactStorage) Update(ctx context.Context, contact models.Contact) (models.Contact, error) {
	return s.repository.UpdateContact(ctx, contact)
}

func (s *contactStorage) Delete(ctx context.Context, userID, contactID int64) error {
	return s.repository.DeleteContact(ctx, userID, contactID)
}

// Search returns the requested page together with paging metadata computed
// from the total number of matches. A page past the end yields an empty
// slice with correct metadata.
func (s *contactStorage) Search(ctx context.Context, search models.ContactSearch) (models.ContactPage, error) {
	total, err := s.repository.CountContacts(ctx, search)
	if err != nil {
		return models.ContactPage{}, err
	}

	contacts := []models.Contact{}
	if int64(search.Offset()) < total {
		contacts, err = s.repository.SearchContacts(ctx, search)
		if err != nil {
			return models.ContactPage{}, err
		}
	}

	return models.ContactPage{
		Contacts: contacts,
		Paging:   models.NewPaging(search.Page, search.Size, total),
	}, nil
}
