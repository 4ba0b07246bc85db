// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/mock"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

func startTestServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(h.UnaryInterceptor))
	h.Register(server)

	go server.Serve(listener)
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestHandler_HealthCheck(t *testing.T) {
	appInfo := mock.NewMockAppInfoService(gomock.NewController(t))
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").AnyTimes()

	h := NewHandler(&service.Services{AppInfoService: appInfo}, logger.Nop())
	client := startTestServer(t, h)

	for _, name := range []string{"", ServiceName} {
		var header metadata.MD
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name}, grpc.Header(&header))
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
		assert.Equal(t, []string{"1.0.0"}, header.Get(VersionHeader))
	}
}

func TestHandler_ShutdownReportsNotServing(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	client := startTestServer(t, h)

	h.Shutdown()

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}
