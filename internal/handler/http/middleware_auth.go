// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/rs/zerolog"
)

// auth resolves the "Authorization" header into a user and stores it in the
// request context under [utils.UserCtxKey].
//
// The header may carry the raw token or "Bearer <token>". A missing header
// and an unknown token are rejected with the same 401 response. On success
// the request-scoped logger is enriched with the username.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		token := utils.StripBearer(r.Header.Get("Authorization"))
		if token == "" {
			log.Debug().Str("func", "*Handler.auth").Msg("empty `Authorization` header")
			utils.WriteErrors(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		user, err := h.services.TokenService.ResolveIdentity(ctx, token)
		if err != nil {
			h.writeError(w, r, err, "*Handler.auth")
			return
		}

		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("username", user.Username)
		})
		ctx = utils.WithUser(log.WithContext(ctx), user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
