// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC transport of the application. It serves
// the standard grpc.health.v1.Health service so that orchestrators can probe
// the process, and stamps every response with the running app version.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ServiceName is the name reported by the health service alongside the
// overall ("") server status.
const ServiceName = "contactkeeper.v1.ContactKeeper"

// VersionHeader is the response header carrying the app version.
const VersionHeader = "x-app-version"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Health statuses start as SERVING once
// the handler is registered on a server.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register installs the health service on server and marks it as serving.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every status to NOT_SERVING so that watchers drain before
// the server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryInterceptor logs each call and attaches the app version header.
func (h *Handler) UnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	if h.services != nil && h.services.AppInfoService != nil {
		version := h.services.AppInfoService.GetAppVersion(ctx)
		if err := grpc.SetHeader(ctx, metadata.Pairs(VersionHeader, version)); err != nil {
			h.logger.Debug().Err(err).Str("func", "*Handler.UnaryInterceptor").Msg("failed to set version header")
		}
	}

	resp, err := handler(ctx, req)

	h.logger.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
