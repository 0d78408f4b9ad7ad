// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/internal/store"
	"github.com/MKhiriev/craft-catalog/internal/utils"
	"github.com/MKhiriev/craft-catalog/models"
)

type itemService struct {
	itemRepository store.ItemRepository
	imageStorage   store.ImageStorage

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, imageStorage store.ImageStorage, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		imageStorage:   imageStorage,
		logger:         logger,
	}
}

// actingUserID returns the owner every item operation is scoped to.
func actingUserID(ctx context.Context) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok || userID <= 0 {
		return 0, ErrNoActingUser
	}

	return userID, nil
}

func (s *itemService) List(ctx context.Context) ([]models.Item, error) {
	ownerID, err := actingUserID(ctx)
	if err != nil {
		return nil, err
	}

	return s.itemRepository.List(ctx, models.ItemScope{OwnerID: ownerID})
}

func (s *itemService) Get(ctx context.Context, id int64) (models.Item, error) {
	ownerID, err := actingUserID(ctx)
	if err != nil {
		return models.Item{}, err
	}

	return s.itemRepository.Get(ctx, models.ItemScope{OwnerID: ownerID, ItemID: id})
}

// Create writes the image (if any) and inserts the item. When the insert
// fails the image is removed again on a best-effort basis.
func (s *itemService) Create(ctx context.Context, newItem models.NewItem, image *models.ImageUpload) (models.Item, error) {
	log := logger.FromContext(ctx)

	ownerID, err := actingUserID(ctx)
	if err != nil {
		return models.Item{}, err
	}

	item := newItem.ToItem(ownerID)

	var imageRef string
	if image != nil {
		imageRef, err = s.imageStorage.Save(ctx, *image)
		if err != nil {
			return models.Item{}, fmt.Errorf("error saving item image: %w", err)
		}
		item.ImageURL = &imageRef
	}

	created, err := s.itemRepository.Create(ctx, item)
	if err != nil {
		if imageRef != "" {
			if removeErr := s.imageStorage.Remove(ctx, imageRef); removeErr != nil {
				log.Warn().Err(removeErr).Str("image", imageRef).Msg("orphaned image left after failed insert")
			}
		}
		return models.Item{}, err
	}

	return created, nil
}

func (s *itemService) Update(ctx context.Context, id int64, update models.ItemUpdate) (int64, error) {
	ownerID, err := actingUserID(ctx)
	if err != nil {
		return 0, err
	}
	update.Scope = models.ItemScope{OwnerID: ownerID, ItemID: id}

	return s.itemRepository.Update(ctx, update)
}

func (s *itemService) Delete(ctx context.Context, id int64) (int64, error) {
	ownerID, err := actingUserID(ctx)
	if err != nil {
		return 0, err
	}

	return s.itemRepository.Delete(ctx, models.ItemScope{OwnerID: ownerID, ItemID: id})
}
