// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for username.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the username
//   - ID        (jti): tokenID, makes every issued token unique
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
//	token, err := utils.GenerateJWTToken("my-service", "alice", uuid, time.Hour, "secret")
func GenerateJWTToken(issuer, username, tokenID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || username == "" || tokenID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   username,
		ID:        tokenID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, Username: username}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// the username from its subject.
//
// Validation includes:
//   - HS256 signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	username, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if username == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{SignedString: tokenString, Username: username}, nil
}

// StripBearer removes a leading "Bearer " scheme from an Authorization header
// value. Values without the scheme are returned unchanged.
func StripBearer(authorizationHeader string) string {
	token, _ := strings.CutPrefix(authorizationHeader, bearerPrefix)
	return token
}
