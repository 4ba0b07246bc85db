// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantErr  error
		wantHTTP bool
		wantGRPC bool
	}{
		{
			name:     "both addresses",
			cfg:      config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"},
			wantHTTP: true,
			wantGRPC: true,
		},
		{
			name:     "only http",
			cfg:      config.Server{HTTPAddress: ":8080", RequestTimeout: time.Second},
			wantHTTP: true,
		},
		{
			name:     "only grpc",
			cfg:      config.Server{GRPCAddress: ":9090"},
			wantGRPC: true,
		},
		{
			name:    "no addresses",
			cfg:     config.Server{},
			wantErr: errNoHandlersAreCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(&service.Services{}, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}
