// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-contact-keeper/internal/logger"

// Storages aggregates every store component handed to the service layer.
type Storages struct {
	UserRepository UserRepository
	ContactStorage ContactStorage
}

// NewStorages builds all store components on top of a single database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		ContactStorage: NewContactStorage(db, logger),
	}
}
