// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrUnauthorized: {http.StatusUnauthorized, app.MsgUnauthorized},
	service.ErrNotFound:     {http.StatusNotFound, app.MsgContactNotFound},
	service.ErrConflict:     {http.StatusBadRequest, app.MsgUsernameConflict},
}

// statusFromError returns the HTTP status for err and the value to put in the
// "errors" field. Validation errors carry their field map. Anything unknown
// becomes a 500 with no detail.
func statusFromError(err error) (int, any) {
	if vErr, ok := validators.IsValidationError(err); ok {
		return http.StatusBadRequest, vErr.Fields
	}

	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}

	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and writes the matching error response.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	log := logger.FromRequest(r)
	status, payload := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteErrors(w, payload, status)
}
