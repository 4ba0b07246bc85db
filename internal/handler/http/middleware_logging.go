// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request. 5xx responses are
// logged at error level and 4xx at warn.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		status := rw.status
		if status == 0 {
			status = http.StatusOK
		}

		logger.FromRequest(r).Logger.WithLevel(accessLogLevel(status)).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", rw.size).
			Msg("request handled")
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
