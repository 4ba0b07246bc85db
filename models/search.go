// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ContactSearch holds the filter and pagination criteria of a contact search.
// Empty filters are ignored; present filters are combined with AND.
type ContactSearch struct {
	// UserID scopes the search to a single owner. Always set by the server.
	UserID int64 `json:"-"`

	// Name is matched case-insensitively as a substring of the first or last name.
	Name string `json:"name,omitempty" validate:"max=100"`

	// Email is matched case-insensitively as a substring of the email.
	Email string `json:"email,omitempty" validate:"max=100"`

	// Phone is matched as a substring of the phone number.
	Phone string `json:"phone,omitempty" validate:"max=100"`

	// Page is the 1-based page number.
	Page int `json:"page" validate:"min=1"`

	// Size is the page size. It is fixed by server configuration.
	Size int `json:"-"`
}

// Offset returns the number of rows to skip for the requested page.
func (s ContactSearch) Offset() int {
	if s.Page < 1 {
		return 0
	}
	return (s.Page - 1) * s.Size
}

// Paging describes where a search result page sits within the full
// filtered result set.
type Paging struct {
	Page      int   `json:"page"`
	TotalPage int   `json:"total_page"`
	TotalItem int64 `json:"total_item"`
}

// NewPaging computes paging metadata for the given page, page size and total
// item count. TotalPage is the ceiling of totalItem / size.
func NewPaging(page, size int, totalItem int64) Paging {
	totalPage := 0
	if size > 0 {
		totalPage = int((totalItem + int64(size) - 1) / int64(size))
	}

	return Paging{
		Page:      page,
		TotalPage: totalPage,
		TotalItem: totalItem,
	}
}

// ContactPage is a single page of search results together with its paging
// metadata.
type ContactPage struct {
	Contacts []Contact
	Paging   Paging
}
