// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds each request when positive.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
