// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/craft-catalog/internal/config"
	"github.com/MKhiriev/craft-catalog/internal/logger"
)

// Storages bundles every persistence component the services depend on.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
	ImageStorage   ImageStorage

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the image storage selected by cfg.Images.Backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	images, err := NewImageStorage(ctx, cfg.Images, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		ItemRepository: NewItemRepository(db, log),
		ImageStorage:   images,
		db:             db,
	}, nil
}

// NewImageStorage builds the image backend named by cfg.Backend.
func NewImageStorage(ctx context.Context, cfg config.Images, log *logger.Logger) (ImageStorage, error) {
	switch cfg.Backend {
	case config.ImagesBackendS3:
		return NewS3ImageStorage(ctx, cfg, log)
	case config.ImagesBackendFS, "":
		return NewFileImageStorage(cfg.Dir, log)
	}

	return nil, fmt.Errorf("unknown image storage backend %q", cfg.Backend)
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
