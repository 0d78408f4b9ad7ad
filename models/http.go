// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Credentials is the body of POST /token.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by POST /token on success.
type TokenResponse struct {
	Token string `json:"token"`
}

// SignUpRequest is the body of POST /users.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ErrorResponse is the minimal JSON error body written on failures.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// NewItem carries the client-supplied fields of POST /items. It is decoded
// either from a JSON body or from multipart form fields.
type NewItem struct {
	ItemID      int64   `json:"itemID"`
	Name        string  `json:"itemName"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Material    *string `json:"material,omitempty"`
	Creator     string  `json:"creator"`

	// priceSet distinguishes an explicit zero price from an absent one.
	priceSet bool
}

// SetPrice assigns the price and marks it as provided.
func (n *NewItem) SetPrice(price float64) {
	n.Price = price
	n.priceSet = true
}

// HasPrice reports whether a price was provided by the client.
func (n NewItem) HasPrice() bool {
	return n.priceSet
}

// UnmarshalJSON records whether the "price" key was present.
func (n *NewItem) UnmarshalJSON(b []byte) error {
	type plain NewItem
	var aux struct {
		plain
		Price *float64 `json:"price"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*n = NewItem(aux.plain)
	if aux.Price != nil {
		n.SetPrice(*aux.Price)
	}

	return nil
}

// MarshalJSON omits "price" when it was never provided.
func (n NewItem) MarshalJSON() ([]byte, error) {
	type plain NewItem
	aux := struct {
		plain
		Price *float64 `json:"price,omitempty"`
	}{plain: plain(n)}
	if n.priceSet {
		price := n.Price
		aux.Price = &price
	}

	return json.Marshal(aux)
}

// ToItem converts the request into an Item owned by ownerID.
func (n NewItem) ToItem(ownerID int64) Item {
	return Item{
		ItemID:      n.ItemID,
		Name:        n.Name,
		Price:       n.Price,
		Description: n.Description,
		Material:    n.Material,
		Creator:     n.Creator,
		UserID:      ownerID,
	}
}
