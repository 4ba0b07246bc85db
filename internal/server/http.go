// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

// newHTTPServer binds cfg.HTTPAddress right away so that an unusable address
// fails at startup.
func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (*httpServer, error) {
	listener, err := net.Listen("tcp", cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrListen, cfg.HTTPAddress, err)
	}

	return &httpServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		listener: listener,
		logger:   logger,
	}, nil
}

func (h *httpServer) Addr() string {
	return h.listener.Addr().String()
}

func (h *httpServer) RunServer() {
	h.logger.Info().Str("address", h.Addr()).Msg("HTTP server is listening")
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server Serve")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
