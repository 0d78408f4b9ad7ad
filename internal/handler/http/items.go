// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/internal/utils"
	"github.com/MKhiriev/craft-catalog/models"
	"github.com/go-chi/chi/v5"
)

// multipartMemory is how much of a multipart body is kept in memory before
// spilling file parts to disk.
const multipartMemory = 8 << 20

// Multipart field names of POST /items.
const (
	formItemID      = "itemID"
	formItemName    = "itemName"
	formPrice       = "price"
	formDescription = "description"
	formMaterial    = "material"
	formCreator     = "creator"
	formImage       = "image"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.List(r.Context())
	if err != nil {
		writeError(w, r, err, http.StatusPreconditionFailed)
		return
	}

	if items == nil {
		items = []models.Item{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.services.ItemService.Get(r.Context(), itemIDFromRequest(r))
	if err != nil {
		writeError(w, r, err, http.StatusPreconditionFailed)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

// createItem handles POST /items, accepting either a JSON body or a
// multipart form with an optional "image" file.
func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize())

	newItem, image, release, err := readNewItem(r)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}
	defer release()

	item, err := h.services.ItemService.Create(r.Context(), newItem, image)
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	logger.FromRequest(r).Info().Int64("id", item.ID).Bool("image", item.ImageURL != nil).Msg("item created")

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var update models.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), http.StatusBadRequest)
		return
	}

	affected, err := h.services.ItemService.Update(r.Context(), itemIDFromRequest(r), update)
	if err != nil {
		writeError(w, r, err, http.StatusPreconditionFailed)
		return
	}

	logger.FromRequest(r).Debug().Int64("affected", affected).Msg("item updated")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	affected, err := h.services.ItemService.Delete(r.Context(), itemIDFromRequest(r))
	if err != nil {
		writeError(w, r, err, http.StatusPreconditionFailed)
		return
	}

	logger.FromRequest(r).Debug().Int64("affected", affected).Msg("item deleted")

	w.WriteHeader(http.StatusNoContent)
}

// itemIDFromRequest parses the {id} path segment. A malformed id yields 0,
// which matches no item.
func itemIDFromRequest(r *http.Request) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// readNewItem decodes the body of POST /items. The returned release func
// frees the multipart temp files and must be called once the image content
// is no longer needed.
func readNewItem(r *http.Request) (models.NewItem, *models.ImageUpload, func(), error) {
	noop := func() {}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var item models.NewItem
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			return models.NewItem{}, nil, noop, bodyError(ErrInvalidJSON, err)
		}
		return item, nil, noop, nil
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return models.NewItem{}, nil, noop, bodyError(ErrInvalidForm, err)
	}
	release := func() {
		_ = r.MultipartForm.RemoveAll()
	}

	item, err := newItemFromForm(r)
	if err != nil {
		release()
		return models.NewItem{}, nil, noop, err
	}

	file, header, err := r.FormFile(formImage)
	if errors.Is(err, http.ErrMissingFile) {
		return item, nil, release, nil
	}
	if err != nil {
		release()
		return models.NewItem{}, nil, noop, bodyError(ErrInvalidForm, err)
	}

	image := &models.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}

	return item, image, func() {
		_ = file.Close()
		release()
	}, nil
}

func newItemFromForm(r *http.Request) (models.NewItem, error) {
	item := models.NewItem{
		Name:        r.FormValue(formItemName),
		Description: r.FormValue(formDescription),
		Creator:     r.FormValue(formCreator),
	}

	if raw := strings.TrimSpace(r.FormValue(formItemID)); raw != "" {
		itemID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.NewItem{}, fmt.Errorf("%w: %s must be an integer", ErrInvalidForm, formItemID)
		}
		item.ItemID = itemID
	}

	if raw := strings.TrimSpace(r.FormValue(formPrice)); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.NewItem{}, fmt.Errorf("%w: %s must be a number", ErrInvalidForm, formPrice)
		}
		item.SetPrice(price)
	}

	if _, ok := r.MultipartForm.Value[formMaterial]; ok {
		material := r.FormValue(formMaterial)
		item.Material = &material
	}

	return item, nil
}

// bodyError wraps a body decoding failure, reporting an oversized body as
// [ErrRequestTooLarge].
func bodyError(kind, err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, maxErr.Limit)
	}
	return fmt.Errorf("%w: %w", kind, err)
}
