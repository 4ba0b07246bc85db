// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg(app.MsgInvalidJSON)
		utils.WriteErrors(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.register")
		return
	}

	utils.WriteData(w, user, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg(app.MsgInvalidJSON)
		utils.WriteErrors(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.UserService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.login")
		return
	}

	utils.WriteData(w, token, http.StatusOK)
}

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	current, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized, "*Handler.getCurrentUser")
		return
	}

	user, err := h.services.UserService.Get(r.Context(), current.Username)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getCurrentUser")
		return
	}

	utils.WriteData(w, user, http.StatusOK)
}

func (h *Handler) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	current, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized, "*Handler.updateCurrentUser")
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateCurrentUser").Msg(app.MsgInvalidJSON)
		utils.WriteErrors(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	req.Username = current.Username

	user, err := h.services.UserService.Update(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateCurrentUser")
		return
	}

	utils.WriteData(w, user, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	current, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized, "*Handler.logout")
		return
	}

	if err := h.services.UserService.Logout(r.Context(), current.Username); err != nil {
		h.writeError(w, r, err, "*Handler.logout")
		return
	}

	utils.WriteData(w, models.OK, http.StatusOK)
}
