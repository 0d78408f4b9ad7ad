// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/craft-catalog/models"
)

// Field names accepted by [ItemValidator].
const (
	FieldItemID      = "itemID"
	FieldItemName    = "itemName"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldCreator     = "creator"
)

var itemFields = []string{FieldItemID, FieldItemName, FieldPrice, FieldDescription, FieldCreator}

// ItemValidator checks new items and partial item updates.
//
// For a [models.NewItem] every listed field is required. For a
// [models.ItemUpdate] only the fields present in the update are checked.
type ItemValidator struct {
}

// NewItemValidator constructs a new ItemValidator
// and returns it as the Validator interface.
func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of models.NewItem and models.ItemUpdate are accepted.
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) == 0 {
		fields = itemFields
	}

	switch value := obj.(type) {
	case models.NewItem:
		return v.validateNewItem(value, fields)
	case *models.NewItem:
		return v.validateNewItem(*value, fields)

	case models.ItemUpdate:
		return v.validateItemUpdate(value, fields)
	case *models.ItemUpdate:
		return v.validateItemUpdate(*value, fields)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateNewItem(item models.NewItem, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldItemID:
			if item.ItemID <= 0 {
				return ErrInvalidItemID
			}
		case FieldItemName:
			if isBlank(item.Name) {
				return ErrEmptyItemName
			}
		case FieldPrice:
			if !item.HasPrice() {
				return ErrMissingPrice
			}
			if item.Price < 0 {
				return ErrNegativePrice
			}
		case FieldDescription:
			if isBlank(item.Description) {
				return ErrEmptyDescription
			}
		case FieldCreator:
			if isBlank(item.Creator) {
				return ErrEmptyCreator
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateItemUpdate checks only the non-nil fields; nil means "do not touch".
func (v *ItemValidator) validateItemUpdate(update models.ItemUpdate, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldItemID:
			if update.ItemID != nil && *update.ItemID <= 0 {
				return ErrInvalidItemID
			}
		case FieldItemName:
			if update.Name != nil && isBlank(*update.Name) {
				return ErrEmptyItemName
			}
		case FieldPrice:
			if update.Price != nil && *update.Price < 0 {
				return ErrNegativePrice
			}
		case FieldDescription:
			if update.Description != nil && isBlank(*update.Description) {
				return ErrEmptyDescription
			}
		case FieldCreator:
			if update.Creator != nil && isBlank(*update.Creator) {
				return ErrEmptyCreator
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
