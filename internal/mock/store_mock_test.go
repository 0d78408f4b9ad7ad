// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/craft-catalog/internal/mock"
	"github.com/MKhiriev/craft-catalog/internal/store"
	"github.com/MKhiriev/craft-catalog/models"
)

var (
	_ store.UserRepository = (*mock.MockUserRepository)(nil)
	_ store.ItemRepository = (*mock.MockItemRepository)(nil)
	_ store.ImageStorage   = (*mock.MockImageStorage)(nil)
)

func TestMockItemRepository_ReturnsRecordedValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockItemRepository(ctrl)
	scope := models.ItemScope{OwnerID: 3, ItemID: 9}

	items.EXPECT().Get(gomock.Any(), scope).Return(models.Item{ID: 9, UserID: 3}, nil)
	items.EXPECT().Delete(gomock.Any(), scope).Return(int64(0), store.ErrExecutingQuery)

	item, err := items.Get(context.Background(), scope)
	require.NoError(t, err)
	assert.Equal(t, int64(9), item.ID)

	affected, err := items.Delete(context.Background(), scope)
	assert.Zero(t, affected)
	assert.True(t, errors.Is(err, store.ErrExecutingQuery))
}

func TestMockImageStorage_ReturnsRecordedValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	images := mock.NewMockImageStorage(ctrl)

	images.EXPECT().Save(gomock.Any(), gomock.Any()).Return("uploads/image-1.png", nil)
	images.EXPECT().Remove(gomock.Any(), "uploads/image-1.png").Return(nil)

	ref, err := images.Save(context.Background(), models.ImageUpload{Filename: "a.png"})
	require.NoError(t, err)
	assert.Equal(t, "uploads/image-1.png", ref)
	assert.NoError(t, images.Remove(context.Background(), ref))
}
