package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllValues(t *testing.T) {
	cfg, rest, err := parseFlags([]string{
		"-a", "localhost:8085",
		"-grpc-address", ":9095",
		"-d", "postgres://u:p@db/contacts",
		"-driver", "pgx",
		"-config", "cfg.json",
		"-log-level", "info",
		"-password-hash-cost", "12",
		"-token-mode", "jwt",
		"-token-sign-key", "k",
		"-token-issuer", "iss",
		"-token-duration", "1h",
		"-page-size", "20",
		"-request-timeout", "5s",
		"-server", "http://localhost:8085",
		"-client-timeout", "3s",
	})
	require.NoError(t, err)
	assert.Empty(t, rest)

	assert.Equal(t, "localhost:8085", cfg.Server.HTTPAddress)
	assert.Equal(t, ":9095", cfg.Server.GRPCAddress)
	assert.Equal(t, "postgres://u:p@db/contacts", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, TokenModeJWT, cfg.App.TokenMode)
	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 20, cfg.App.SearchPageSize)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:8085", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, _, err := parseFlags([]string{"-c", "other.json"})
	require.NoError(t, err)
	assert.Equal(t, "other.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgsLeavesZeroValues(t *testing.T) {
	cfg, rest, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, _, err := parseFlags([]string{"-a", "not-an-address"})
	require.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip", input: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{name: "empty host", input: ":8080", want: ":8080"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad host", input: "example:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
}
