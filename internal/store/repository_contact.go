// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// contactRepository is the SQL implementation of [ContactRepository].
// Every statement carries `user_id = ?` so that a user can never see or
// modify another user's contacts.
type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := c.QueryRowContext(ctx, c.rebind(createContact),
		contact.UserID, contact.FirstName, contact.LastName, contact.Email, contact.Phone)

	created, err := scanContact(row)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.CreateContact").
			Int64("user_id", contact.UserID).
			Msg("failed to insert contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (c *contactRepository) FindContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	contact, err := scanContact(c.QueryRowContext(ctx, c.rebind(findContact), contactID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.FindContact").
			Int64("user_id", userID).
			Int64("contact_id", contactID).
			Msg("failed to find contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contact, nil
}

// UpdateContact overwrites all mutable fields of the contact identified by
// contact.ID and contact.UserID in a single statement.
func (c *contactRepository) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := c.QueryRowContext(ctx, c.rebind(updateContact),
		contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.ID, contact.UserID)

	updated, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.UpdateContact").
			Int64("user_id", contact.UserID).
			Int64("contact_id", contact.ID).
			Msg("failed to update contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (c *contactRepository) DeleteContact(ctx context.Context, userID, contactID int64) error {
	log := logger.FromContext(ctx)

	res, err := c.ExecContext(ctx, c.rebind(deleteContact), contactID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.DeleteContact").
			Int64("user_id", userID).
			Int64("contact_id", contactID).
			Msg("failed to delete contact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// SearchContacts returns one page of the owner's contacts matching the
// search filters, ordered by id.
func (c *contactRepository) SearchContacts(ctx context.Context, search models.ContactSearch) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchContactsQuery(c.builder(), search)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.SearchContacts").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.SearchContacts").
			Int64("user_id", search.UserID).
			Msg("failed to execute search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Contact, 0, search.Size)
	for rows.Next() {
		var item models.Contact
		if err := rows.Scan(&item.ID, &item.UserID, &item.FirstName, &item.LastName, &item.Email, &item.Phone); err != nil {
			log.Err(err).Str("func", "contactRepository.SearchContacts").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "contactRepository.SearchContacts").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// CountContacts returns the number of the owner's contacts matching the
// search filters, ignoring pagination.
func (c *contactRepository) CountContacts(ctx context.Context, search models.ContactSearch) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountContactsQuery(c.builder(), search)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.CountContacts").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := c.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "contactRepository.CountContacts").
			Int64("user_id", search.UserID).
			Msg("failed to count contacts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

func scanContact(row *sql.Row) (models.Contact, error) {
	var contact models.Contact
	err := row.Scan(&contact.ID, &contact.UserID, &contact.FirstName, &contact.LastName, &contact.Email, &contact.Phone)
	return contact, err
}
