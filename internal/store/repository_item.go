// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/models"
)

// itemRepository is the SQL-backed implementation of [ItemRepository].
// Every statement it issues is filtered by [ownedBy].
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// List returns every item owned by scope.OwnerID in insertion order.
// Returns an empty slice when the owner has no items.
func (r *itemRepository) List(ctx context.Context, scope models.ItemScope) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.buildSelectItemsQuery(models.ItemScope{OwnerID: scope.OwnerID})
	if err != nil {
		log.Err(err).Str("func", "itemRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.List").
			Int64("user_id", scope.OwnerID).
			Msg("failed to execute query for listing items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 16)

	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "itemRepository.List").
				Int64("user_id", scope.OwnerID).
				Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "itemRepository.List").
			Int64("user_id", scope.OwnerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// Get returns the owned item named by scope. A foreign or missing item
// yields [ErrItemNotFound].
func (r *itemRepository) Get(ctx context.Context, scope models.ItemScope) (models.Item, error) {
	log := logger.FromContext(ctx)

	if scope.ItemID <= 0 {
		return models.Item{}, ErrItemNotFound
	}

	query, args, err := r.builder.buildSelectItemsQuery(scope)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Get").Msg("failed to build query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.Get").
			Int64("user_id", scope.OwnerID).
			Int64("id", scope.ItemID).
			Msg("failed to get item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

// Create inserts item and returns the stored row, including generated
// ID and timestamps.
func (r *itemRepository) Create(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.buildInsertItemQuery(item)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Create").Msg("failed to build query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanItem(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.Create").
			Int64("user_id", item.UserID).
			Msg("failed to create item")
		return models.Item{}, r.queryError(err)
	}

	return created, nil
}

// Update applies the non-nil fields of update to the owned item. An empty
// update, a foreign item and a missing item all report zero rows.
func (r *itemRepository) Update(ctx context.Context, update models.ItemUpdate) (int64, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() || update.Scope.ItemID <= 0 {
		return 0, nil
	}

	query, args, err := r.builder.buildUpdateItemQuery(update)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Update").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "itemRepository.Update", update.Scope, query, args)
}

// Delete removes the owned item named by scope.
func (r *itemRepository) Delete(ctx context.Context, scope models.ItemScope) (int64, error) {
	log := logger.FromContext(ctx)

	if scope.ItemID <= 0 {
		return 0, nil
	}

	query, args, err := r.builder.buildDeleteItemQuery(scope)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Delete").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "itemRepository.Delete", scope, query, args)
}

func (r *itemRepository) exec(ctx context.Context, funcName string, scope models.ItemScope, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("user_id", scope.OwnerID).
			Int64("id", scope.ItemID).
			Msg("failed to execute statement")
		return 0, r.queryError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}
