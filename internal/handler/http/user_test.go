// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRegister(t *testing.T) {
	req := models.RegisterRequest{Username: "test", Password: "secret", Name: "Test"}

	tests := []struct {
		name       string
		body       any
		setup      func(m testServices)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			body: req,
			setup: func(m testServices) {
				m.users.EXPECT().Register(gomock.Any(), req).Return(models.User{UserID: 1, Username: "test", Name: "Test"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":{"username":"test","name":"Test"}}`,
		},
		{
			name: "duplicate username",
			body: req,
			setup: func(m testServices) {
				m.users.EXPECT().Register(gomock.Any(), req).Return(models.User{}, service.ErrConflict)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":"Username already exists"}`,
		},
		{
			name: "validation failure",
			body: models.RegisterRequest{},
			setup: func(m testServices) {
				m.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, &validators.ValidationError{
					Fields: map[string]string{"username": "is required", "password": "is required", "name": "is required"},
				})
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":{"username":"is required","password":"is required","name":"is required"}}`,
		},
		{
			name:       "malformed json",
			body:       `{"username":`,
			setup:      func(m testServices) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":"Invalid JSON was passed"}`,
		},
		{
			name: "unexpected error",
			body: req,
			setup: func(m testServices) {
				m.users.EXPECT().Register(gomock.Any(), req).Return(models.User{}, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"errors":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			tt.setup(mocks)

			rec := doRequest(t, h.Init(), http.MethodPost, "/api/users", tt.body, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestLogin(t *testing.T) {
	req := models.LoginRequest{Username: "test", Password: "secret"}

	t.Run("success", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.users.EXPECT().Login(gomock.Any(), req).Return(models.Token{SignedString: "tok-1", Username: "test"}, nil)

		rec := doRequest(t, h.Init(), http.MethodPost, "/api/users/login", req, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"token":"tok-1"}}`, rec.Body.String())
	})

	t.Run("unauthorized", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.users.EXPECT().Login(gomock.Any(), req).Return(models.Token{}, service.ErrUnauthorized)

		rec := doRequest(t, h.Init(), http.MethodPost, "/api/users/login", req, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"errors":"Unauthorized"}`, rec.Body.String())
	})
}

func TestGetCurrentUser(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.expectAuthorized()
	mocks.users.EXPECT().Get(gomock.Any(), "test").Return(testUser, nil)

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/users/current", nil, testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"username":"test","name":"Test"}}`, rec.Body.String())
}

func TestGetCurrentUser_BearerScheme(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.expectAuthorized()
	mocks.users.EXPECT().Get(gomock.Any(), "test").Return(testUser, nil)

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/users/current", nil, "Bearer "+testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateCurrentUser(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.expectAuthorized()

	name := "Renamed"
	mocks.users.EXPECT().
		Update(gomock.Any(), models.UpdateUserRequest{Username: "test", Name: &name}).
		Return(models.User{Username: "test", Name: name}, nil)

	rec := doRequest(t, h.Init(), http.MethodPatch, "/api/users/current", `{"name":"Renamed"}`, testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"username":"test","name":"Renamed"}}`, rec.Body.String())
}

func TestUpdateCurrentUser_IgnoresUsernameInBody(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.expectAuthorized()

	mocks.users.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UpdateUserRequest) (models.User, error) {
			assert.Equal(t, "test", req.Username)
			return testUser, nil
		})

	rec := doRequest(t, h.Init(), http.MethodPatch, "/api/users/current", `{"username":"other"}`, testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.expectAuthorized()
	mocks.users.EXPECT().Logout(gomock.Any(), "test").Return(nil)

	rec := doRequest(t, h.Init(), http.MethodDelete, "/api/users/logout", nil, testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"OK"}`, rec.Body.String())
}
