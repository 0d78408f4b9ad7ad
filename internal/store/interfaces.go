// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/craft-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists catalog accounts.
type UserRepository interface {
	// CreateUser inserts user (with an already hashed password) and returns
	// the stored record. A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns [ErrUserNotFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns [ErrUserNotFound] when no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser applies the non-nil fields of update and returns the number
	// of affected rows.
	UpdateUser(ctx context.Context, update models.UserUpdate) (int64, error)
}

// ItemRepository persists catalog items. Every method is restricted to the
// owner named by the scope it receives.
type ItemRepository interface {
	// List returns all items of scope.OwnerID ordered by primary key.
	List(ctx context.Context, scope models.ItemScope) ([]models.Item, error)

	// Get returns the item identified by scope or [ErrItemNotFound].
	Get(ctx context.Context, scope models.ItemScope) (models.Item, error)

	// Create inserts item and returns the stored record.
	Create(ctx context.Context, item models.Item) (models.Item, error)

	// Update applies the non-nil fields of update and returns the number of
	// affected rows. Zero means no owned record matched.
	Update(ctx context.Context, update models.ItemUpdate) (int64, error)

	// Delete removes the item identified by scope and returns the number of
	// affected rows.
	Delete(ctx context.Context, scope models.ItemScope) (int64, error)
}

// ImageStorage keeps the images attached to items.
type ImageStorage interface {
	// Save stores the upload under a fresh, timestamp-qualified name and
	// returns the reference persisted with the item.
	Save(ctx context.Context, image models.ImageUpload) (string, error)

	// Remove deletes the image behind ref. A missing image is not an error.
	Remove(ctx context.Context, ref string) error
}
