// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers built for the configured
// listeners.
package handler

import (
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-contact-keeper/internal/handler/http"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.RequestTimeout, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
