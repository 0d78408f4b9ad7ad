// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidItemID    = errors.New("itemID must be a positive integer")
	ErrEmptyItemName    = errors.New("itemName is required")
	ErrMissingPrice     = errors.New("price is required")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrEmptyDescription = errors.New("description is required")
	ErrEmptyCreator     = errors.New("creator is required")

	ErrEmptyName     = errors.New("name is required")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrEmptyPassword = errors.New("password is required")

	ErrEmptyImage           = errors.New("image is empty")
	ErrUnsupportedImageType = errors.New("images only: jpeg, jpg, png or gif")
	ErrImageTooLarge        = errors.New("image is too large")
)
