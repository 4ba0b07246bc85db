// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// appInfoService serves the version string read once from config.
type appInfoService struct {
	version string
}

// NewAppInfoService returns an [AppInfoService] reporting cfg.Version with
// surrounding whitespace removed. A blank version is rejected.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("func", "NewAppInfoService").Str("version", version).Msg("serving app version")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
