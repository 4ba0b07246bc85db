// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized, "*Handler.createContact")
		return
	}

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Str("func", "*Handler.createContact").Msg(app.MsgInvalidJSON)
		utils.WriteErrors(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	contact.UserID = owner.UserID

	created, err := h.services.ContactService.Create(r.Context(), contact)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createContact")
		return
	}

	utils.WriteData(w, created, http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized, "*Handler.getContact")
		return
	}

	contactID, ok := contactIDFromRequest(r)
	if !ok {
		h.writeError(w, r, service.ErrNotFound, "*Handler.getContact")
		return
	}

	contact, err := h.services.ContactService.Get(r.Context(), owner.UserID, contactID)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getContact")
		return
	}

	utils.WriteData(w, contact, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized, "*Handler.updateContact")
		return
	}

	contactID, ok := contactIDFromRequest(r)
	if !ok {
		h.writeError(w, r, service.ErrNotFound, "*Handler.updateContact")
		return
	}

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Str("func", "*Handler.updateContact").Msg(app.MsgInvalidJSON)
		utils.WriteErrors(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	contact.ID = contactID
	contact.UserID = owner.UserID

	updated, err := h.services.ContactService.Update(r.Context(), contact)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateContact")
		return
	}

	utils.WriteData(w, updated, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized, "*Handler.deleteContact")
		return
	}

	contactID, ok := contactIDFromRequest(r)
	if !ok {
		h.writeError(w, r, service.ErrNotFound, "*Handler.deleteContact")
		return
	}

	if err := h.services.ContactService.Delete(r.Context(), owner.UserID, contactID); err != nil {
		h.writeError(w, r, err, "*Handler.deleteContact")
		return
	}

	utils.WriteData(w, models.OK, http.StatusOK)
}

func (h *Handler) searchContacts(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized, "*Handler.searchContacts")
		return
	}

	query := r.URL.Query()
	search := models.ContactSearch{
		UserID: owner.UserID,
		Name:   query.Get("name"),
		Email:  query.Get("email"),
		Phone:  query.Get("phone"),
		Page:   1,
	}

	if rawPage := query.Get("page"); rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil {
			h.writeError(w, r, &validators.ValidationError{
				Fields: map[string]string{"page": "must be a number"},
			}, "*Handler.searchContacts")
			return
		}
		search.Page = page
	}

	page, err := h.services.ContactService.Search(r.Context(), search)
	if err != nil {
		h.writeError(w, r, err, "*Handler.searchContacts")
		return
	}

	utils.WritePage(w, page, http.StatusOK)
}

// contactIDFromRequest parses the {contactID} URL parameter. Anything but a
// positive integer is reported as not ok.
func contactIDFromRequest(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "contactID"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
