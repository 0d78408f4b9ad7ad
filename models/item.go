// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Item is a catalog entry owned by a single user.
//
// JSON names follow the public wire format of the API (camelCase, itemID /
// itemName / imageUrl) so existing clients keep working.
type Item struct {
	// ID is the server-assigned primary key.
	ID int64 `json:"id"`

	// ItemID is the external business identifier supplied by the client.
	ItemID int64 `json:"itemID"`

	// Name is unique across the catalog.
	Name string `json:"itemName"`

	// Price is a non-negative amount.
	Price float64 `json:"price"`

	Description string `json:"description"`

	// Material is optional.
	Material *string `json:"material"`

	Creator string `json:"creator"`

	// ImageURL is the stored reference of the attached image, if any.
	ImageURL *string `json:"imageUrl"`

	// UserID is the owner of the item.
	UserID int64 `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemScope identifies the owned slice of the catalog an operation may touch.
// OwnerID is always required; ItemID narrows the scope to one record and is
// zero for collection-wide operations.
type ItemScope struct {
	OwnerID int64
	ItemID  int64
}

// ItemUpdate represents a partial update of a single owned item.
// Only non-nil fields are written.
type ItemUpdate struct {
	// Scope selects the record. It is filled from the route and the acting
	// identity, never from the request body.
	Scope ItemScope `json:"-"`

	ItemID      *int64   `json:"itemID,omitempty"`
	Name        *string  `json:"itemName,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	Material    *string  `json:"material,omitempty"`
	Creator     *string  `json:"creator,omitempty"`
}

// IsEmpty reports whether the update carries no field to change.
func (u ItemUpdate) IsEmpty() bool {
	return u.ItemID == nil &&
		u.Name == nil &&
		u.Price == nil &&
		u.Description == nil &&
		u.Material == nil &&
		u.Creator == nil
}
