// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/craft-catalog/models"
)

// AuthService issues session tokens and resolves them back to users.
type AuthService interface {
	// IssueToken checks the credentials and signs a token for the user.
	IssueToken(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// Authenticate verifies a token and returns the live user it names.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)

	RegisterUser(ctx context.Context, request models.SignUpRequest) (models.User, error)
	GetProfile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, update models.UserUpdate) (int64, error)
}

// ItemService is the ownership-scoped item catalog. The owner of every
// operation is the acting user stored in the context.
type ItemService interface {
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id int64) (models.Item, error)

	// Create stores image first, when present, and then inserts the item
	// referencing it.
	Create(ctx context.Context, item models.NewItem, image *models.ImageUpload) (models.Item, error)

	// Update and Delete return the number of affected rows; zero means the
	// acting user owns no item with that id.
	Update(ctx context.Context, id int64, update models.ItemUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ItemServiceWrapper defines middleware composition for ItemService.
// Implementations wrap an existing ItemService to add behavior such as
// validation.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
