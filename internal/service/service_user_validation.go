// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// UserValidationService validates requests before they reach the wrapped
// [UserService]. Invalid input never touches the store.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during register request validation: %w", err)
	}

	return v.inner.Register(ctx, req)
}

func (v *UserValidationService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Token{}, fmt.Errorf("error during login request validation: %w", err)
	}

	return v.inner.Login(ctx, req)
}

func (v *UserValidationService) Get(ctx context.Context, username string) (models.User, error) {
	return v.inner.Get(ctx, username)
}

func (v *UserValidationService) Update(ctx context.Context, req models.UpdateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during update request validation: %w", err)
	}

	return v.inner.Update(ctx, req)
}

func (v *UserValidationService) Logout(ctx context.Context, username string) error {
	return v.inner.Logout(ctx, username)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}
