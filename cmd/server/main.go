// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/handler"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/server"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("go-contact-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	// a version baked in at build time wins over the configured default
	if buildInfo.HasVersion() && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().Str("driver", cfg.Storage.DB.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("token_mode", cfg.App.TokenMode).
		Msg("received configs")

	ctx := context.Background()
	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer(ctx)
	log.Info().Msg("server stopped")
}
