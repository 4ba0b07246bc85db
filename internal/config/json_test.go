package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllGroups(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"version":            "1.2.3",
			"log_level":          "info",
			"password_hash_cost": 11,
			"token_mode":         "jwt",
			"token_sign_key":     "key",
			"token_issuer":       "iss",
			"token_duration":     "90m",
			"search_page_size":   5,
		},
		"storage": map[string]any{"db": map[string]any{
			"driver":         "sqlite3",
			"dsn":            "file:test.db",
			"max_open_conns": 3,
		}},
		"server": map[string]any{
			"http_address":    ":8080",
			"grpc_address":    ":9090",
			"request_timeout": "15s",
		},
		"adapter": map[string]any{
			"http_address":    "http://localhost:8080",
			"request_timeout": float64(2 * time.Second),
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.Equal(t, TokenModeJWT, cfg.App.TokenMode)
	assert.Equal(t, 90*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 5, cfg.App.SearchPageSize)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, 3, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, ":9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_BadDuration(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"request_timeout": "soon"},
	})

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(30 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"30s"`, string(b))
}
