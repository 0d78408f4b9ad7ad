// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/craft-catalog/models"
)

// sqliteTimeLayouts are the text forms sqlite returns for timestamps when the
// column type is not known to the driver (e.g. in RETURNING clauses).
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// timestamp scans a time column from either a native time value or its
// text form.
type timestamp struct {
	dst *time.Time
}

var _ sql.Scanner = timestamp{}

func (t timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t.dst = time.Time{}
		return nil
	case time.Time:
		*t.dst = v
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	}

	return fmt.Errorf("unsupported timestamp type %T", src)
}

func (t timestamp) parse(value string) error {
	for _, layout := range sqliteTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			*t.dst = parsed
			return nil
		}
	}

	return fmt.Errorf("unsupported timestamp format %q", value)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.Password,
		timestamp{&user.CreatedAt},
		timestamp{&user.UpdatedAt},
	)

	return user, err
}

func scanItem(row rowScanner) (models.Item, error) {
	var item models.Item
	err := row.Scan(
		&item.ID,
		&item.ItemID,
		&item.Name,
		&item.Price,
		&item.Description,
		&item.Material,
		&item.Creator,
		&item.ImageURL,
		&item.UserID,
		timestamp{&item.CreatedAt},
		timestamp{&item.UpdatedAt},
	)

	return item, err
}
