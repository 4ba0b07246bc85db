// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// NewTokenService returns the [TokenService] selected by cfg.TokenMode.
func NewTokenService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) (TokenService, error) {
	switch cfg.TokenMode {
	case config.TokenModeOpaque:
		return &opaqueTokenService{
			userRepository: userRepository,
			generator:      utils.NewUUIDGenerator(),
			logger:         logger,
		}, nil
	case config.TokenModeJWT:
		return &jwtTokenService{
			opaqueTokenService: opaqueTokenService{
				userRepository: userRepository,
				generator:      utils.NewUUIDGenerator(),
				logger:         logger,
			},
			tokenSignKey:  cfg.TokenSignKey,
			tokenIssuer:   cfg.TokenIssuer,
			tokenDuration: cfg.TokenDuration,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTokenMode, cfg.TokenMode)
	}
}

// opaqueTokenService issues random UUIDv7 tokens. A token is valid for as
// long as it is stored on a user.
type opaqueTokenService struct {
	userRepository store.UserRepository
	generator      *utils.UUIDGenerator
	logger         *logger.Logger
}

func (s *opaqueTokenService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	return models.Token{SignedString: s.generator.Generate(), Username: user.Username}, nil
}

func (s *opaqueTokenService) ResolveIdentity(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrUnauthorized
	}

	user, err := s.userRepository.FindUserByToken(ctx, token)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUnauthorized
	}
	if err != nil {
		log.Err(err).Str("func", "*opaqueTokenService.ResolveIdentity").Msg("token lookup failed")
		return models.User{}, fmt.Errorf("token lookup failed: %w", err)
	}

	return user, nil
}

// jwtTokenService issues HS256-signed JWTs. Signature, issuer and expiry are
// checked before the stored-token lookup, so a logged-out token is rejected
// even while its signature is still valid.
type jwtTokenService struct {
	opaqueTokenService

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration
}

func (s *jwtTokenService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, user.Username, s.generator.Generate(), s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *jwtTokenService) ResolveIdentity(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	parsed, err := utils.ValidateAndParseJWTToken(token, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*jwtTokenService.ResolveIdentity").Msg("invalid token")
		return models.User{}, ErrUnauthorized
	}

	user, err := s.opaqueTokenService.ResolveIdentity(ctx, token)
	if err != nil {
		return models.User{}, err
	}

	if user.Username != parsed.Username {
		log.Warn().Str("func", "*jwtTokenService.ResolveIdentity").Msg("token subject does not match its owner")
		return models.User{}, ErrUnauthorized
	}

	return user, nil
}
