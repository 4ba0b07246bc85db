// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/go-resty/resty/v2"
)

// envelope is the {"data": ..., "paging": ...} shape of every success body.
type envelope[T any] struct {
	Data   T              `json:"data"`
	Paging *models.Paging `json:"paging,omitempty"`
}

type httpAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAdapter constructs the REST implementation of [ContactKeeperAdapter].
// cfg.HTTPAddress may omit the scheme, "http" is assumed then.
func NewHTTPAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ContactKeeperAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request starts a JSON request carrying the stored token, if any.
func (h *httpAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", token)
	}

	return req
}

// do executes req and decodes the data envelope of a 2xx response into T.
func do[T any](req *resty.Request, method, path, op string) (envelope[T], error) {
	var result envelope[T]

	resp, err := req.SetResult(&result).Execute(method, path)
	if err != nil {
		return result, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

func (h *httpAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	result, err := do[models.User](h.request(ctx).SetBody(req), resty.MethodPost, "/api/users", "register")
	return result.Data, err
}

func (h *httpAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	result, err := do[models.Token](h.request(ctx).SetBody(req), resty.MethodPost, "/api/users/login", "login")
	if err != nil {
		return models.Token{}, err
	}

	token := result.Data
	token.Username = req.Username
	h.SetToken(token.SignedString)

	h.logger.Debug().Str("username", req.Username).Msg("logged in")
	return token, nil
}

func (h *httpAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	result, err := do[models.User](h.request(ctx), resty.MethodGet, "/api/users/current", "get current user")
	return result.Data, err
}

func (h *httpAdapter) UpdateCurrentUser(ctx context.Context, req models.UpdateUserRequest) (models.User, error) {
	result, err := do[models.User](h.request(ctx).SetBody(req), resty.MethodPatch, "/api/users/current", "update current user")
	return result.Data, err
}

func (h *httpAdapter) Logout(ctx context.Context) error {
	if _, err := do[string](h.request(ctx), resty.MethodDelete, "/api/users/logout", "logout"); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpAdapter) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	result, err := do[models.Contact](h.request(ctx).SetBody(contact), resty.MethodPost, "/api/contacts", "create contact")
	return result.Data, err
}

func (h *httpAdapter) GetContact(ctx context.Context, contactID int64) (models.Contact, error) {
	result, err := do[models.Contact](h.request(ctx), resty.MethodGet, contactPath(contactID), "get contact")
	return result.Data, err
}

func (h *httpAdapter) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	result, err := do[models.Contact](h.request(ctx).SetBody(contact), resty.MethodPut, contactPath(contact.ID), "update contact")
	return result.Data, err
}

func (h *httpAdapter) DeleteContact(ctx context.Context, contactID int64) error {
	_, err := do[string](h.request(ctx), resty.MethodDelete, contactPath(contactID), "delete contact")
	return err
}

// SearchContacts sends only the non-empty filters. A zero page is left for
// the server to default.
func (h *httpAdapter) SearchContacts(ctx context.Context, search models.ContactSearch) (models.ContactPage, error) {
	params := map[string]string{}
	if search.Name != "" {
		params["name"] = search.Name
	}
	if search.Email != "" {
		params["email"] = search.Email
	}
	if search.Phone != "" {
		params["phone"] = search.Phone
	}
	if search.Page != 0 {
		params["page"] = strconv.Itoa(search.Page)
	}

	result, err := do[[]models.Contact](h.request(ctx).SetQueryParams(params), resty.MethodGet, "/api/contacts", "search contacts")
	if err != nil {
		return models.ContactPage{}, err
	}

	page := models.ContactPage{Contacts: result.Data}
	if page.Contacts == nil {
		page.Contacts = []models.Contact{}
	}
	if result.Paging != nil {
		page.Paging = *result.Paging
	}

	return page, nil
}

func (h *httpAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("version: %w", err)
	}

	return strings.TrimSpace(resp.String()), nil
}

func contactPath(contactID int64) string {
	return "/api/contacts/" + strconv.FormatInt(contactID, 10)
}
