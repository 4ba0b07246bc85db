// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
)

// Services aggregates every service handed to the transport layer.
type Services struct {
	UserService    UserService
	ContactService ContactService
	TokenService   TokenService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of storages. User and contact
// services are wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	validator := validators.NewContactKeeperValidator()
	hasher := utils.NewBcryptHasher(cfg.PasswordHashCost)

	tokenService, err := NewTokenService(storages.UserRepository, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	contactService, err := NewContactService(storages.ContactStorage, cfg.SearchPageSize, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating contact service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	userService := NewUserService(storages.UserRepository, tokenService, hasher, logger)

	return &Services{
		UserService:    NewUserValidationService(validator).Wrap(userService),
		ContactService: NewContactValidationService(validator).Wrap(contactService),
		TokenService:   tokenService,
		AppInfoService: appInfoService,
	}, nil
}
