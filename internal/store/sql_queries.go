// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	"github.com/MKhiriev/go-contact-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// Static queries are written with ? placeholders and rebound to the
// dialect's format by [DB.rebind].
const (
	userColumns    = `id, username, password, name, token`
	contactColumns = `id, user_id, first_name, last_name, email, phone`

	createUser = `INSERT INTO users (username, password, name)
		VALUES (?, ?, ?)
		RETURNING ` + userColumns

	findUserByUsername = `SELECT ` + userColumns + `
		FROM users
		WHERE username = ?`

	findUserByToken = `SELECT ` + userColumns + `
		FROM users
		WHERE token = ?`

	setUserToken = `UPDATE users
		SET token = ?
		WHERE username = ?`

	createContact = `INSERT INTO contacts (user_id, first_name, last_name, email, phone)
		VALUES (?, ?, ?, ?, ?)
		RETURNING ` + contactColumns

	findContact = `SELECT ` + contactColumns + `
		FROM contacts
		WHERE id = ? AND user_id = ?`

	updateContact = `UPDATE contacts
		SET first_name = ?, last_name = ?, email = ?, phone = ?
		WHERE id = ? AND user_id = ?
		RETURNING ` + contactColumns

	deleteContact = `DELETE FROM contacts
		WHERE id = ? AND user_id = ?`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns a LIKE pattern matching s as a literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// searchConditions builds the WHERE clause of a contact search. The owner is
// always part of it; non-empty filters are added with AND.
func searchConditions(search models.ContactSearch) sq.And {
	conds := sq.And{sq.Eq{"user_id": search.UserID}}

	if search.Name != "" {
		pattern := containsPattern(strings.ToLower(search.Name))
		conds = append(conds, sq.Or{
			sq.Expr(`LOWER(first_name) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(last_name) LIKE ? ESCAPE '\'`, pattern),
		})
	}

	if search.Email != "" {
		conds = append(conds, sq.Expr(`LOWER(email) LIKE ? ESCAPE '\'`, containsPattern(strings.ToLower(search.Email))))
	}

	if search.Phone != "" {
		conds = append(conds, sq.Expr(`phone LIKE ? ESCAPE '\'`, containsPattern(search.Phone)))
	}

	return conds
}

// buildSearchContactsQuery selects one page of matching contacts ordered by id.
func buildSearchContactsQuery(b sq.StatementBuilderType, search models.ContactSearch) (string, []any, error) {
	return b.Select(strings.Split(contactColumns, ", ")...).
		From(models.Contact{}.TableName()).
		Where(searchConditions(search)).
		OrderBy("id ASC").
		Limit(uint64(search.Size)).
		Offset(uint64(search.Offset())).
		ToSql()
}

// buildCountContactsQuery counts every contact matching the search filters.
func buildCountContactsQuery(b sq.StatementBuilderType, search models.ContactSearch) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(models.Contact{}.TableName()).
		Where(searchConditions(search)).
		ToSql()
}

// buildUpdateUserQuery sets only the fields present in update.
func buildUpdateUserQuery(b sq.StatementBuilderType, username string, update models.UserUpdate) (string, []any, error) {
	clauses := make(map[string]any, 2)
	if update.Name != nil {
		clauses["name"] = *update.Name
	}
	if update.Password != nil {
		clauses["password"] = *update.Password
	}

	return b.Update(models.User{}.TableName()).
		SetMap(clauses).
		Where(sq.Eq{"username": username}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}
