// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"

	"github.com/MKhiriev/craft-catalog/internal/config"
	"github.com/MKhiriev/craft-catalog/internal/handler"
	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/internal/metrics"
	"github.com/MKhiriev/craft-catalog/internal/server"
	"github.com/MKhiriev/craft-catalog/internal/service"
	"github.com/MKhiriev/craft-catalog/internal/store"
	"github.com/MKhiriev/craft-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewLogger("catalog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}
	if buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	if cfg.App.TokenDuration <= 0 {
		log.Warn().Msg("APP_TOKEN_DURATION is not set: issued tokens never expire")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("images_backend", cfg.Storage.Images.Backend).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, metrics.New(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
