// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	vErr, ok := IsValidationError(err)
	require.True(t, ok, "expected *ValidationError, got %v", err)
	return vErr.Fields
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewContactKeeperValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_RegisterRequest(t *testing.T) {
	v := NewContactKeeperValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.RegisterRequest{Username: "test", Password: "rahasia", Name: "Test"}))

	fields := fieldsOf(t, v.Validate(ctx, &models.RegisterRequest{}))
	assert.Equal(t, map[string]string{
		"username": "is required",
		"password": "is required",
		"name":     "is required",
	}, fields)

	long := strings.Repeat("x", 101)
	fields = fieldsOf(t, v.Validate(ctx, models.RegisterRequest{Username: long, Password: "p", Name: "n"}))
	assert.Equal(t, "length must be at most 100 characters", fields["username"])
	assert.Len(t, fields, 1)
}

func TestValidate_PasswordLength(t *testing.T) {
	v := NewContactKeeperValidator()
	ctx := context.Background()
	ok := strings.Repeat("a", 72)
	long := strings.Repeat("a", 73)
	const msg = "length must be at most 72 characters"

	assert.NoError(t, v.Validate(ctx, models.RegisterRequest{Username: "u", Password: ok, Name: "n"}))
	assert.Equal(t, map[string]string{"password": msg},
		fieldsOf(t, v.Validate(ctx, models.RegisterRequest{Username: "u", Password: long, Name: "n"})))
	assert.Equal(t, map[string]string{"password": msg},
		fieldsOf(t, v.Validate(ctx, models.LoginRequest{Username: "u", Password: long})))
	assert.Equal(t, map[string]string{"password": msg},
		fieldsOf(t, v.Validate(ctx, models.UpdateUserRequest{Password: &long})))
}

func TestValidate_LoginRequest(t *testing.T) {
	v := NewContactKeeperValidator()

	fields := fieldsOf(t, v.Validate(context.Background(), models.LoginRequest{Username: "test"}))
	assert.Equal(t, map[string]string{"password": "is required"}, fields)
}

func TestValidate_UpdateUserRequest(t *testing.T) {
	v := NewContactKeeperValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.UpdateUserRequest
		invalid []string
	}{
		{name: "nothing", req: models.UpdateUserRequest{}},
		{name: "name only", req: models.UpdateUserRequest{Name: ptr("New")}},
		{name: "password only", req: models.UpdateUserRequest{Password: ptr("secret")}},
		{name: "empty name", req: models.UpdateUserRequest{Name: ptr("")}, invalid: []string{"name"}},
		{
			name:    "both too long",
			req:     models.UpdateUserRequest{Name: ptr(strings.Repeat("n", 101)), Password: ptr(strings.Repeat("p", 101))},
			invalid: []string{"name", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if len(tt.invalid) == 0 {
				assert.NoError(t, err)
				return
			}
			fields := fieldsOf(t, err)
			for _, f := range tt.invalid {
				assert.Contains(t, fields, f)
			}
			assert.Len(t, fields, len(tt.invalid))
		})
	}
}

func TestValidate_Contact(t *testing.T) {
	v := NewContactKeeperValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Contact{FirstName: "Eko"}))
	assert.NoError(t, v.Validate(ctx, models.Contact{
		FirstName: "Eko",
		LastName:  ptr("Khannedy"),
		Email:     ptr("eko@pzn.com"),
		Phone:     ptr("08999999"),
	}))

	fields := fieldsOf(t, v.Validate(ctx, &models.Contact{
		FirstName: "",
		LastName:  ptr(strings.Repeat("l", 101)),
		Email:     ptr("salah"),
		Phone:     ptr(strings.Repeat("1", 21)),
	}))
	assert.Equal(t, "is required", fields["first_name"])
	assert.Equal(t, "length must be at most 100 characters", fields["last_name"])
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "length must be at most 20 characters", fields["phone"])
}

func TestValidate_ContactSearch(t *testing.T) {
	v := NewContactKeeperValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ContactSearch{Page: 1, Name: "test"}))

	fields := fieldsOf(t, v.Validate(ctx, models.ContactSearch{Page: 0}))
	assert.Equal(t, map[string]string{"page": "must be at least 1"}, fields)
}

func TestValidationError_ErrorIsSorted(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "bad", "a": "awful"}}

	assert.Equal(t, "validation failed: a: awful; b: bad", err.Error())
}
