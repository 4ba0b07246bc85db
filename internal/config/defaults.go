// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// DefaultVersion is reported by GET /api/version when no version is configured.
const DefaultVersion = "dev"

const (
	defaultHTTPAddress      = "localhost:8080"
	defaultAdapterAddress   = "http://localhost:8080"
	defaultRequestTimeout   = 30 * time.Second
	defaultClientTimeout    = 10 * time.Second
	defaultPasswordHashCost = 10
	defaultTokenIssuer      = "go-contact-keeper"
	defaultTokenDuration    = 24 * time.Hour
	defaultSearchPageSize   = 10
	defaultMaxOpenConns     = 10
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:          DefaultVersion,
			LogLevel:         "debug",
			PasswordHashCost: defaultPasswordHashCost,
			TokenMode:        TokenModeOpaque,
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			SearchPageSize:   defaultSearchPageSize,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				MaxOpenConns: defaultMaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultClientTimeout,
		},
	}
}
