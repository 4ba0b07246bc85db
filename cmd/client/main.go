// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/client"
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-contact-keeper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log = log.WithLevel(cfg.LogLevel)

	if len(cfg.Args) == 0 {
		fmt.Fprintln(os.Stderr, client.Usage)
		os.Exit(2)
	}

	if cfg.Args[0] == "build-info" {
		fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	serverAdapter, err := adapter.NewHTTPAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	tokenPath, err := client.DefaultTokenPath()
	if err != nil {
		log.Fatal().Err(err).Msg("resolve token path")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, client.NewTokenFile(tokenPath), os.Stdout, log)
	if err = app.Run(ctx, cfg.Args); err != nil {
		log.Err(err).Str("command", cfg.Args[0]).Msg("client command failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
