// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/internal/utils"
	"github.com/MKhiriev/craft-catalog/models"
)

// fileImageStorage keeps images in a local directory that is also served
// over HTTP. Durability is whatever the local filesystem offers.
type fileImageStorage struct {
	dir    string
	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewFileImageStorage returns an [ImageStorage] writing into dir. The
// directory is created when missing.
func NewFileImageStorage(dir string, logger *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating image directory %s: %w", dir, err)
	}

	logger.Debug().Str("dir", dir).Msg("creating file image storage")
	return &fileImageStorage{
		dir:    dir,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
	}, nil
}

// Save writes the upload as image-<unix millis><ext>. The file is created
// exclusively; a name collision within the same millisecond gets a uuid
// suffix.
func (s *fileImageStorage) Save(ctx context.Context, image models.ImageUpload) (string, error) {
	log := logger.FromContext(ctx)

	name := imageName(s.now(), image.Filename)
	file, err := s.create(name)
	if errors.Is(err, fs.ErrExist) {
		name = uniqueImageName(name, s.ids.Generate())
		file, err = s.create(name)
	}
	if err != nil {
		log.Err(err).Str("func", "fileImageStorage.Save").Str("name", name).Msg("failed to create image file")
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	if _, err = io.Copy(file, contextReader{ctx: ctx, r: image.Content}); err != nil {
		_ = file.Close()
		_ = os.Remove(file.Name())
		log.Err(err).Str("func", "fileImageStorage.Save").Str("name", name).Msg("failed to write image file")
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	if err = file.Close(); err != nil {
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	return imageRef(name), nil
}

func (s *fileImageStorage) create(name string) (*os.File, error) {
	return os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}

// Remove deletes the image file behind ref.
func (s *fileImageStorage) Remove(ctx context.Context, ref string) error {
	name, err := imageNameFromRef(ref)
	if err != nil {
		return err
	}

	err = os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "fileImageStorage.Remove").Str("ref", ref).Msg("failed to remove image")
		return fmt.Errorf("%w: %w", ErrRemovingImage, err)
	}

	return nil
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
