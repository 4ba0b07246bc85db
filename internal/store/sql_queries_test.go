// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/MKhiriev/go-contact-keeper/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestContainsPattern_EscapesWildcards(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"test", "%test%"},
		{"50%", `%50\%%`},
		{"a_b", `%a\_b%`},
		{`c:\dir`, `%c:\\dir%`},
		{"", "%%"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, containsPattern(tt.in), tt.in)
	}
}

func TestBuildSearchContactsQuery_NoFilters(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := buildSearchContactsQuery(b, models.ContactSearch{UserID: 7, Page: 2, Size: 10})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, user_id, first_name, last_name, email, phone FROM contacts WHERE (user_id = $1) ORDER BY id ASC LIMIT 10 OFFSET 10",
		query)
	assert.Equal(t, []any{int64(7)}, args)
}

func TestBuildSearchContactsQuery_AllFilters(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Question)

	query, args, err := buildSearchContactsQuery(b, models.ContactSearch{
		UserID: 1, Name: "Test 1", Email: "MAIL", Phone: "0813", Page: 1, Size: 10,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "(LOWER(first_name) LIKE ? ESCAPE '\\' OR LOWER(last_name) LIKE ? ESCAPE '\\')")
	assert.Contains(t, query, "LOWER(email) LIKE ? ESCAPE '\\'")
	assert.Contains(t, query, "phone LIKE ? ESCAPE '\\'")
	assert.Contains(t, query, "LIMIT 10 OFFSET 0")
	assert.Equal(t, []any{int64(1), "%test 1%", "%test 1%", "%mail%", "%0813%"}, args)
}

func TestBuildCountContactsQuery(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := buildCountContactsQuery(b, models.ContactSearch{UserID: 3, Email: "x", Page: 5, Size: 10})
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM contacts WHERE (user_id = $1 AND LOWER(email) LIKE $2 ESCAPE '\\')", query)
	assert.Equal(t, []any{int64(3), "%x%"}, args)
}

func TestBuildUpdateUserQuery(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := buildUpdateUserQuery(b, "test", models.UserUpdate{Name: strPtr("New"), Password: strPtr("hash")})
	require.NoError(t, err)

	assert.Equal(t, "UPDATE users SET name = $1, password = $2 WHERE username = $3 RETURNING id, username, password, name, token", query)
	assert.Equal(t, []any{"New", "hash", "test"}, args)
}

func TestRebind(t *testing.T) {
	pg := &DB{dialect: PostgresDialect}
	lite := &DB{dialect: SQLiteDialect}

	assert.Equal(t, "SELECT 1 WHERE a = $1 AND b = $2", pg.rebind("SELECT 1 WHERE a = ? AND b = ?"))
	assert.Equal(t, "SELECT 1 WHERE a = ? AND b = ?", lite.rebind("SELECT 1 WHERE a = ? AND b = ?"))
}
