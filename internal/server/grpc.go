// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-contact-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrListen, cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryInterceptor))
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) Addr() string {
	return g.gRPCNetListener.Addr().String()
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.Addr()).Msg("gRPC server is listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
