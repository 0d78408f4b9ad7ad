// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/craft-catalog/internal/validators"
	"github.com/MKhiriev/craft-catalog/models"
)

// ItemValidationService rejects invalid items and images before they reach
// the wrapped ItemService. Validation failures wrap ErrInvalidDataProvided.
type ItemValidationService struct {
	inner          ItemService
	itemValidator  validators.Validator
	imageValidator validators.Validator
}

func NewItemValidationService(maxImageSize int64) ItemServiceWrapper {
	return &ItemValidationService{
		itemValidator:  validators.NewItemValidator(),
		imageValidator: validators.NewImageValidator(maxImageSize),
	}
}

func (v *ItemValidationService) List(ctx context.Context) ([]models.Item, error) {
	return v.inner.List(ctx)
}

func (v *ItemValidationService) Get(ctx context.Context, id int64) (models.Item, error) {
	return v.inner.Get(ctx, id)
}

func (v *ItemValidationService) Create(ctx context.Context, item models.NewItem, image *models.ImageUpload) (models.Item, error) {
	if err := v.itemValidator.Validate(ctx, item); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// the image is checked before anything is persisted
	if image != nil {
		if err := v.imageValidator.Validate(ctx, image); err != nil {
			return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	return v.inner.Create(ctx, item, image)
}

func (v *ItemValidationService) Update(ctx context.Context, id int64, update models.ItemUpdate) (int64, error) {
	if err := v.itemValidator.Validate(ctx, update); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, id, update)
}

func (v *ItemValidationService) Delete(ctx context.Context, id int64) (int64, error) {
	return v.inner.Delete(ctx, id)
}

func (v *ItemValidationService) Wrap(wrapped ItemService) ItemService {
	v.inner = wrapped
	return v
}
