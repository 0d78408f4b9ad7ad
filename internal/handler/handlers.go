// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers of the catalog server.
package handler

import (
	"github.com/MKhiriev/craft-catalog/internal/config"
	"github.com/MKhiriev/craft-catalog/internal/handler/http"
	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/internal/metrics"
	"github.com/MKhiriev/craft-catalog/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, m, logger),
	}, nil
}
