// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the API base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// LogLevel is the minimal level written to the client log file.
	LogLevel string
	// Args holds the positional arguments left after flag parsing
	// (the client command and its operands).
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config with the same sources as [GetStructuredConfig],
// maps only the fields relevant to the client runtime, and validates the
// resulting [ClientConfig]. Server-only settings are not validated.
func GetClientConfig() (*ClientConfig, error) {
	cfg, rest, err := load(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		LogLevel: cfg.App.LogLevel,
		Args:     rest,
	}

	return clientCfg, clientCfg.validate()
}
