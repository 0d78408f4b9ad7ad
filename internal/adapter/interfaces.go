// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the catalog REST API.
//
// [CatalogClient] hides the transport from its callers. HTTP statuses are
// mapped to the sentinel errors in errors.go by mapHTTPError so that callers
// can use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/craft-catalog/models"
)

// CatalogClient talks to a catalog server on behalf of one user.
type CatalogClient interface {
	// SetToken stores the session token attached to every authenticated
	// request.
	SetToken(token string)
	Token() string

	// IssueToken exchanges credentials for a session token and stores it via
	// SetToken.
	IssueToken(ctx context.Context, credentials models.Credentials) (string, error)
	Register(ctx context.Context, request models.SignUpRequest) (models.User, error)

	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)

	// CreateItem sends a JSON body, or a multipart form when image is not nil.
	CreateItem(ctx context.Context, item models.NewItem, image *models.ImageUpload) (models.Item, error)
	UpdateItem(ctx context.Context, id int64, update models.ItemUpdate) error
	DeleteItem(ctx context.Context, id int64) error
}
