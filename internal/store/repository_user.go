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

// userRepository is the SQL implementation of [UserRepository]. It handles
// account creation, lookup and token bookkeeping against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns it with the assigned id.
//
// Error handling:
//   - UNIQUE violation on username → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, r.db.rebind(createUser), user.Username, user.Password, user.Name)

	created, err := scanUser(row)
	if err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username already taken")
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByUsername returns the user with the given username or
// [ErrUserNotFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByToken returns the user whose stored token equals token exactly,
// or [ErrUserNotFound].
func (r *userRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByToken", findUserByToken, token)
}

// UpdateUser applies the non-nil fields of update in a single statement and
// returns the stored result. An empty update just re-reads the user.
func (r *userRepository) UpdateUser(ctx context.Context, username string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.FindUserByUsername(ctx, username)
	}

	query, args, err := buildUpdateUserQuery(r.db.builder(), username, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("username", username).Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// SetToken stores token for the user, or clears it when token is nil.
func (r *userRepository) SetToken(ctx context.Context, username string, token *string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, r.db.rebind(setUserToken), token, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetToken").Str("username", username).Msg("error setting token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, r.db.rebind(query), arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Username, &user.Password, &user.Name, &user.Token)
	return user, err
}
