// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

var (
	// ErrPasswordMismatch is returned by [PasswordHasher.Compare] when the
	// plaintext does not match the stored hash.
	ErrPasswordMismatch = errors.New("password mismatch")
	// ErrPasswordTooLong is returned by [PasswordHasher.Hash] for passwords
	// longer than [MaxPasswordBytes] bytes.
	ErrPasswordTooLong = errors.New("password too long")
)

// PasswordHasher hashes passwords and verifies plaintexts against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// BcryptHasher is a [PasswordHasher] backed by bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt hasher with the given cost. Costs outside
// bcrypt's supported range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("error comparing password: %w", err)
	}
	return nil
}
