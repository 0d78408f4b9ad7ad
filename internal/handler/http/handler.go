// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/craft-catalog/internal/config"
	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/internal/metrics"
	"github.com/MKhiriev/craft-catalog/internal/service"
)

// formOverhead is the room left for the non-file fields of a multipart
// item upload on top of the largest accepted image.
const formOverhead = 1 << 20

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// uploadsDir is served under /uploads/. Empty when images live in S3.
	uploadsDir     string
	maxImageSize   int64
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Handler {
	if m == nil {
		m = metrics.New()
	}

	h := &Handler{
		services:       services,
		metrics:        m,
		maxImageSize:   cfg.Storage.Images.MaxSize,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
	if cfg.Storage.Images.Backend != config.ImagesBackendS3 {
		h.uploadsDir = cfg.Storage.Images.Dir
	}

	logger.Info().Msg("http handler created")
	return h
}

func (h *Handler) maxBodySize() int64 {
	return h.maxImageSize + formOverhead
}

func (h *Handler) authFailure(reason string) {
	if h.metrics != nil {
		h.metrics.AuthFailure(reason)
	}
}
