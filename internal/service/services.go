// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/craft-catalog/internal/config"
	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/internal/store"
)

type Services struct {
	AuthService    AuthService
	ItemService    ItemService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, cfg.App, logger),
	)
	itemService := NewItemValidationService(cfg.Storage.Images.MaxSize).Wrap(
		NewItemService(storages.ItemRepository, storages.ImageStorage, logger),
	)

	return &Services{
		AuthService:    authService,
		ItemService:    itemService,
		AppInfoService: appInfoService,
	}, nil
}
