// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/craft-catalog/migrations"
	"github.com/MKhiriev/craft-catalog/models"
)

var (
	userColumns = []string{
		"user_id",
		"name",
		"email",
		"password",
		"created_at",
		"updated_at",
	}

	itemColumns = []string{
		"id",
		"item_id",
		"item_name",
		"price",
		"description",
		"material",
		"creator",
		"image_url",
		"user_id",
		"created_at",
		"updated_at",
	}
)

// queryBuilder renders statements with the placeholder format of a dialect.
type queryBuilder struct {
	sq sq.StatementBuilderType
}

func newQueryBuilder(dialect string) queryBuilder {
	var format sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		format = sq.Dollar
	}

	return queryBuilder{sq: sq.StatementBuilder.PlaceholderFormat(format)}
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ownedBy is the ownership predicate shared by every item statement: the
// owner always matches and, for single-item scopes, so does the primary key.
func ownedBy(scope models.ItemScope) sq.Eq {
	predicate := sq.Eq{"user_id": scope.OwnerID}
	if scope.ItemID != 0 {
		predicate["id"] = scope.ItemID
	}

	return predicate
}

func (b queryBuilder) buildInsertUserQuery(user models.User) (string, []any, error) {
	return b.sq.
		Insert(user.TableName()).
		Columns("name", "email", "password").
		Values(user.Name, user.Email, user.Password).
		Suffix(returning(userColumns)).
		ToSql()
}

func (b queryBuilder) buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return b.sq.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func (b queryBuilder) buildSelectUserByIDQuery(userID int64) (string, []any, error) {
	return b.sq.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpdateUserQuery sets only the non-nil fields of update. The caller
// must not pass an empty update.
func (b queryBuilder) buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	query := b.sq.
		Update(models.User{}.TableName()).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.Email != nil {
		query = query.Set("email", *update.Email)
	}
	if update.Password != nil {
		query = query.Set("password", *update.Password)
	}

	return query.
		Where(sq.Eq{"user_id": update.UserID}).
		ToSql()
}

func (b queryBuilder) buildSelectItemsQuery(scope models.ItemScope) (string, []any, error) {
	return b.sq.
		Select(itemColumns...).
		From(models.Item{}.TableName()).
		Where(ownedBy(scope)).
		OrderBy("id").
		ToSql()
}

func (b queryBuilder) buildInsertItemQuery(item models.Item) (string, []any, error) {
	return b.sq.
		Insert(item.TableName()).
		Columns(
			"item_id",
			"item_name",
			"price",
			"description",
			"material",
			"creator",
			"image_url",
			"user_id",
		).
		Values(
			item.ItemID,
			item.Name,
			item.Price,
			item.Description,
			item.Material,
			item.Creator,
			item.ImageURL,
			item.UserID,
		).
		Suffix(returning(itemColumns)).
		ToSql()
}

// buildUpdateItemQuery sets only the non-nil fields of update. The caller
// must not pass an empty update.
func (b queryBuilder) buildUpdateItemQuery(update models.ItemUpdate) (string, []any, error) {
	query := b.sq.
		Update(models.Item{}.TableName()).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if update.ItemID != nil {
		query = query.Set("item_id", *update.ItemID)
	}
	if update.Name != nil {
		query = query.Set("item_name", *update.Name)
	}
	if update.Price != nil {
		query = query.Set("price", *update.Price)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	if update.Material != nil {
		query = query.Set("material", *update.Material)
	}
	if update.Creator != nil {
		query = query.Set("creator", *update.Creator)
	}

	return query.
		Where(ownedBy(update.Scope)).
		ToSql()
}

func (b queryBuilder) buildDeleteItemQuery(scope models.ItemScope) (string, []any, error) {
	return b.sq.
		Delete(models.Item{}.TableName()).
		Where(ownedBy(scope)).
		ToSql()
}
