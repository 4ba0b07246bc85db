// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestCreateContact(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.expectAuthorized()

	in := models.Contact{
		UserID:    testUser.UserID,
		FirstName: "test",
		LastName:  strPtr("test"),
		Email:     strPtr("test@example.com"),
		Phone:     strPtr("0812453653"),
	}
	out := in
	out.ID = 10
	mocks.contacts.EXPECT().Create(gomock.Any(), in).Return(out, nil)

	rec := doRequest(t, h.Init(), http.MethodPost, "/api/contacts",
		`{"first_name":"test","last_name":"test","email":"test@example.com","phone":"0812453653"}`, testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"data":{"id":10,"first_name":"test","last_name":"test","email":"test@example.com","phone":"0812453653"}}`,
		rec.Body.String())
}

func TestGetContact(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.expectAuthorized()
		mocks.contacts.EXPECT().Get(gomock.Any(), int64(1), int64(7)).
			Return(models.Contact{ID: 7, UserID: 1, FirstName: "Ann"}, nil)

		rec := doRequest(t, h.Init(), http.MethodGet, "/api/contacts/7", nil, testToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"id":7,"first_name":"Ann","last_name":null,"email":null,"phone":null}}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.expectAuthorized()
		mocks.contacts.EXPECT().Get(gomock.Any(), int64(1), int64(8)).Return(models.Contact{}, service.ErrNotFound)

		rec := doRequest(t, h.Init(), http.MethodGet, "/api/contacts/8", nil, testToken)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"errors":"Contact is not found"}`, rec.Body.String())
	})

	for _, id := range []string{"abc", "0", "-3"} {
		t.Run("invalid id "+id, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			mocks.expectAuthorized()

			rec := doRequest(t, h.Init(), http.MethodGet, "/api/contacts/"+id, nil, testToken)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestUpdateContact(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.expectAuthorized()

	expected := models.Contact{ID: 7, UserID: 1, FirstName: "budi", LastName: strPtr("yanto")}
	mocks.contacts.EXPECT().Update(gomock.Any(), expected).Return(expected, nil)

	rec := doRequest(t, h.Init(), http.MethodPut, "/api/contacts/7", `{"id":99,"first_name":"budi","last_name":"yanto"}`, testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(7), data["id"])
	assert.Equal(t, "budi", data["first_name"])
}

func TestDeleteContact(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.expectAuthorized()
		mocks.contacts.EXPECT().Delete(gomock.Any(), int64(1), int64(7)).Return(nil)

		rec := doRequest(t, h.Init(), http.MethodDelete, "/api/contacts/7", nil, testToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":"OK"}`, rec.Body.String())
	})

	t.Run("absent", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.expectAuthorized()
		mocks.contacts.EXPECT().Delete(gomock.Any(), int64(1), int64(7)).Return(service.ErrNotFound)

		rec := doRequest(t, h.Init(), http.MethodDelete, "/api/contacts/7", nil, testToken)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSearchContacts(t *testing.T) {
	t.Run("filters and page", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.expectAuthorized()

		mocks.contacts.EXPECT().
			Search(gomock.Any(), models.ContactSearch{UserID: 1, Name: "test 1", Email: "mail", Phone: "08", Page: 2}).
			Return(models.ContactPage{
				Contacts: []models.Contact{{ID: 11, FirstName: "test 11"}},
				Paging:   models.Paging{Page: 2, TotalPage: 2, TotalItem: 11},
			}, nil)

		rec := doRequest(t, h.Init(), http.MethodGet, "/api/contacts?name=test+1&email=mail&phone=08&page=2", nil, testToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"data":[{"id":11,"first_name":"test 11","last_name":null,"email":null,"phone":null}],"paging":{"page":2,"total_page":2,"total_item":11}}`,
			rec.Body.String())
	})

	t.Run("default page", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.expectAuthorized()

		mocks.contacts.EXPECT().
			Search(gomock.Any(), models.ContactSearch{UserID: 1, Page: 1}).
			Return(models.ContactPage{Contacts: []models.Contact{}, Paging: models.Paging{Page: 1}}, nil)

		rec := doRequest(t, h.Init(), http.MethodGet, "/api/contacts", nil, testToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":[],"paging":{"page":1,"total_page":0,"total_item":0}}`, rec.Body.String())
	})

	t.Run("non-numeric page", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.expectAuthorized()

		rec := doRequest(t, h.Init(), http.MethodGet, "/api/contacts?page=two", nil, testToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"errors":{"page":"must be a number"}}`, rec.Body.String())
	})
}
