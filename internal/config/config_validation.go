// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.App.SearchPageSize < 1 {
		return fmt.Errorf("%w: search page size must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < minPasswordHashCost || cfg.App.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost must be in [%d, %d]", ErrInvalidAppConfigs, minPasswordHashCost, maxPasswordHashCost)
	}

	switch cfg.App.TokenMode {
	case TokenModeOpaque:
	case TokenModeJWT:
		if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
			return fmt.Errorf("%w: jwt mode needs sign key, issuer and duration", ErrInvalidAppConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown token mode %q", ErrInvalidAppConfigs, cfg.App.TokenMode)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
