// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/mock"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "test"

var testUser = models.User{UserID: 1, Username: "test", Name: "Test"}

type testServices struct {
	users    *mock.MockUserService
	contacts *mock.MockContactService
	tokens   *mock.MockTokenService
	appInfo  *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := testServices{
		users:    mock.NewMockUserService(ctrl),
		contacts: mock.NewMockContactService(ctrl),
		tokens:   mock.NewMockTokenService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		UserService:    mocks.users,
		ContactService: mocks.contacts,
		TokenService:   mocks.tokens,
		AppInfoService: mocks.appInfo,
	}, 0, logger.Nop())

	return h, mocks
}

// expectAuthorized makes the token service accept testToken as testUser.
func (m testServices) expectAuthorized() {
	m.tokens.EXPECT().ResolveIdentity(gomock.Any(), testToken).Return(testUser, nil)
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svc, 5*time.Second, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
}

func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/current"},
		{http.MethodPatch, "/api/users/current"},
		{http.MethodDelete, "/api/users/logout"},
		{http.MethodPost, "/api/contacts"},
		{http.MethodGet, "/api/contacts"},
		{http.MethodGet, "/api/contacts/1"},
		{http.MethodPut, "/api/contacts/1"},
		{http.MethodDelete, "/api/contacts/1"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, nil, "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"errors":"Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/nonexistent", nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"errors":"Not Found"}`, rec.Body.String())
}

func TestInit_WrongMethodReturns405(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(t, h.Init(), http.MethodPost, "/api/version", nil, "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").Times(2)

	rec := doRequest(t, router, http.MethodGet, "/api/version", nil, "")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanic(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).DoAndReturn(func(context.Context) string {
		panic("boom")
	})

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/version", nil, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
