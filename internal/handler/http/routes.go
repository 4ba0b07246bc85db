// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/users", func(r chi.Router) {
		// routes without authorization
		r.Post("/", h.register)
		r.Post("/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/current", h.getCurrentUser)
			r.Patch("/current", h.updateCurrentUser)
			r.Delete("/logout", h.logout)
		})
	})

	router.Route("/api/contacts", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.createContact)
		r.Get("/", h.searchContacts)
		r.Get("/{contactID}", h.getContact)
		r.Put("/{contactID}", h.updateContact)
		r.Delete("/{contactID}", h.deleteContact)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteErrors(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteErrors(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	})

	return router
}
