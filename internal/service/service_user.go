// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// userService is the concrete implementation of [UserService].
// It hashes passwords with a [utils.PasswordHasher], issues tokens through a
// [TokenService] and persists everything with a [store.UserRepository].
type userService struct {
	userRepository store.UserRepository
	tokenService   TokenService
	hasher         utils.PasswordHasher

	// dummyHash is compared against for unknown usernames so that a failed
	// login costs the same whether or not the user exists.
	dummyHash     string
	dummyHashOnce sync.Once

	logger *logger.Logger
}

// NewUserService constructs a [UserService]. Input is expected to be
// validated already; see [NewUserValidationService].
func NewUserService(userRepository store.UserRepository, tokenService TokenService, hasher utils.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		tokenService:   tokenService,
		hasher:         hasher,
		logger:         logger,
	}
}

// Register creates a new account and returns it.
//
// Returns ErrConflict if the username is already taken.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("password hashing failed")
		return models.User{}, err
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		Username: req.Username,
		Password: hash,
		Name:     req.Name,
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		log.Info().Str("func", "*userService.Register").Str("username", req.Username).Msg("username already exists")
		return models.User{}, ErrConflict
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("username", user.Username).Msg("user registered")
	return user, nil
}

// Login verifies the credentials, stores a freshly issued token on the user
// and returns it. Unknown usernames and wrong passwords both yield
// ErrUnauthorized.
func (s *userService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		_ = s.hasher.Compare(s.getDummyHash(), req.Password)
		return models.Token{}, ErrUnauthorized
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.Login").Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := s.hasher.Compare(user.Password, req.Password); err != nil {
		if !errors.Is(err, utils.ErrPasswordMismatch) {
			log.Err(err).Str("func", "*userService.Login").Msg("password comparison failed")
		}
		return models.Token{}, ErrUnauthorized
	}

	token, err := s.tokenService.IssueToken(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.Login").Msg("token issuing failed")
		return models.Token{}, err
	}

	if err := s.userRepository.SetToken(ctx, user.Username, &token.SignedString); err != nil {
		log.Err(err).Str("func", "*userService.Login").Msg("saving token failed")
		return models.Token{}, fmt.Errorf("saving token failed: %w", err)
	}

	log.Info().Str("username", user.Username).Msg("user logged in")
	return token, nil
}

// hashPassword turns a password over bcrypt's byte limit into a validation
// error on the password field. Multibyte input can pass the character-count
// rule and still exceed it.
func (s *userService) hashPassword(password string) (string, error) {
	hash, err := s.hasher.Hash(password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return "", &validators.ValidationError{Fields: map[string]string{
			"password": fmt.Sprintf("length must be at most %d bytes", utils.MaxPasswordBytes),
		}}
	}
	return hash, err
}

// Get re-reads the user from the store.
func (s *userService) Get(ctx context.Context, username string) (models.User, error) {
	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUnauthorized
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return user, nil
}

// Update replaces the name and/or password of the user. Absent fields are
// left untouched.
func (s *userService) Update(ctx context.Context, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	update := models.UserUpdate{Name: req.Name}
	if req.Password != nil {
		hash, err := s.hashPassword(*req.Password)
		if err != nil {
			log.Err(err).Str("func", "*userService.Update").Msg("password hashing failed")
			return models.User{}, err
		}
		update.Password = &hash
	}

	user, err := s.userRepository.UpdateUser(ctx, req.Username, update)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUnauthorized
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.Update").Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return user, nil
}

// Logout clears the stored token, which invalidates it immediately.
func (s *userService) Logout(ctx context.Context, username string) error {
	err := s.userRepository.SetToken(ctx, username, nil)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUnauthorized
	}
	if err != nil {
		return fmt.Errorf("clearing token failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("username", username).Msg("user logged out")
	return nil
}

func (s *userService) getDummyHash() string {
	s.dummyHashOnce.Do(func() {
		hash, err := s.hasher.Hash("not-a-real-password")
		if err != nil {
			s.logger.Err(err).Str("func", "*userService.getDummyHash").Msg("dummy hash generation failed")
			return
		}
		s.dummyHash = hash
	})

	return s.dummyHash
}
