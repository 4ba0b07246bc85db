// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/handler"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating HTTP server: %w", err)
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			if servers.httpServer != nil {
				servers.httpServer.listener.Close()
			}
			return nil, fmt.Errorf("error creating gRPC server: %w", err)
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) {
	ctx, stop := signal.NotifyContext(
		ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	var wg sync.WaitGroup

	// launch all created servers
	if s.httpServer != nil {
		wg.Go(s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		wg.Go(s.gRPCServer.RunServer)
	}

	<-ctx.Done()
	s.logger.Info().Msg("stop signal received")

	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		// finish HTTP server
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}

		// finish gRPC server
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}
