// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// ContactValidationService validates contacts and search criteria before
// they reach the wrapped [ContactService].
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService(validator validators.Validator) ContactServiceWrapper {
	return &ContactValidationService{validator: validator}
}

func (v *ContactValidationService) Create(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if err := v.validator.Validate(ctx, contact); err != nil {
		return models.Contact{}, fmt.Errorf("error during contact validation before saving: %w", err)
	}

	return v.inner.Create(ctx, contact)
}

func (v *ContactValidationService) Get(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	return v.inner.Get(ctx, userID, contactID)
}

func (v *ContactValidationService) Update(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if err := v.validator.Validate(ctx, contact); err != nil {
		return models.Contact{}, fmt.Errorf("error during contact validation before updating: %w", err)
	}

	return v.inner.Update(ctx, contact)
}

func (v *ContactValidationService) Delete(ctx context.Context, userID, contactID int64) error {
	return v.inner.Delete(ctx, userID, contactID)
}

func (v *ContactValidationService) Search(ctx context.Context, search models.ContactSearch) (models.ContactPage, error) {
	if err := v.validator.Validate(ctx, search); err != nil {
		return models.ContactPage{}, fmt.Errorf("error during search validation: %w", err)
	}

	return v.inner.Search(ctx, search)
}

func (v *ContactValidationService) Wrap(wrapped ContactService) ContactService {
	v.inner = wrapped
	return v
}
