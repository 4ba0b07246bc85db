// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var userRowColumns = []string{"id", "username", "password", "name", "token"}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		dialect:            PostgresDialect,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &userRepository{db: db, logger: db.logger}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Username: "test", Password: "hash", Name: "Test"}

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("test", "hash", "Test").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "test", "hash", "Test", nil))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Username != "test" || created.Name != "Test" {
		t.Errorf("unexpected user %+v", created)
	}
	if created.Token != nil {
		t.Errorf("expected nil token, got %v", *created.Token)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "test"})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "test"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1)) // wrong shape

	_, err := repo.CreateUser(context.Background(), models.User{Username: "test"})
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT id, username, password, name, token\s+FROM users\s+WHERE username = \$1`).
		WithArgs("test").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "test", "hash", "Test", "tok"))

	found, err := repo.FindUserByUsername(context.Background(), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Username != "test" || found.Password != "hash" {
		t.Errorf("unexpected user %+v", found)
	}
	if found.Token == nil || *found.Token != "tok" {
		t.Errorf("expected token tok, got %v", found.Token)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT id`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByUsername_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT id`).
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByUsername(context.Background(), "test")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindUserByToken_ExactMatch(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`WHERE token = \$1`).
		WithArgs("test").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "test", "hash", "Test", "test"))

	found, err := repo.FindUserByToken(context.Background(), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", found.UserID)
	}
}

func TestFindUserByToken_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`WHERE token = \$1`).
		WithArgs("salah").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByToken(context.Background(), "salah")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUser_NameOnly(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`UPDATE users SET name = \$1 WHERE username = \$2 RETURNING`).
		WithArgs("New", "test").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "test", "hash", "New", nil))

	updated, err := repo.UpdateUser(context.Background(), "test", models.UserUpdate{Name: strPtr("New")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "New" {
		t.Errorf("expected name New, got %s", updated.Name)
	}
}

func TestUpdateUser_EmptyUpdateReadsUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`WHERE username = \$1`).
		WithArgs("test").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "test", "hash", "Test", nil))

	updated, err := repo.UpdateUser(context.Background(), "test", models.UserUpdate{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Test" {
		t.Errorf("expected name Test, got %s", updated.Name)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`UPDATE users`).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.UpdateUser(context.Background(), "ghost", models.UserUpdate{Password: strPtr("h")})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSetToken_Set(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	token := "abc"

	mock.ExpectExec(`UPDATE users\s+SET token = \$1\s+WHERE username = \$2`).
		WithArgs(&token, "test").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetToken(context.Background(), "test", &token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetToken_Clear(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`UPDATE users`).
		WithArgs(nil, "test").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetToken(context.Background(), "test", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetToken_UnknownUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`UPDATE users`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetToken(context.Background(), "ghost", nil)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSetToken_ExecError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`UPDATE users`).
		WillReturnError(errors.New("boom"))

	err := repo.SetToken(context.Background(), "test", nil)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
