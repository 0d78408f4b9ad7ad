// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/craft-catalog/internal/service"
	"github.com/MKhiriev/craft-catalog/internal/store"
	"github.com/MKhiriev/craft-catalog/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback int
		want     int
	}{
		{"validation", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNegativePrice), 500, http.StatusBadRequest},
		{"bad credentials", service.ErrInvalidCredentials, 500, http.StatusUnauthorized},
		{"invalid token", service.ErrTokenIsInvalid, 500, http.StatusUnauthorized},
		{"no acting user", service.ErrNoActingUser, 412, http.StatusUnauthorized},
		{"duplicate item name", fmt.Errorf("insert: %w", store.ErrItemNameAlreadyExists), 500, http.StatusBadRequest},
		{"constraint", fmt.Errorf("update: %w", store.ErrConstraintViolation), 412, http.StatusBadRequest},
		{"email taken", store.ErrEmailAlreadyExists, 500, http.StatusConflict},
		{"not found", store.ErrItemNotFound, 412, http.StatusNotFound},
		{"too large", ErrRequestTooLarge, 400, http.StatusRequestEntityTooLarge},
		{"store failure uses fallback 412", fmt.Errorf("%w: boom", store.ErrExecutingQuery), 412, http.StatusPreconditionFailed},
		{"store failure uses fallback 500", store.ErrSavingImage, 500, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), 500, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err, tt.fallback))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	validation := fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNegativePrice)
	assert.Equal(t, validation.Error(), messageFromError(validation, http.StatusBadRequest))

	wrappedPG := fmt.Errorf("%w: ERROR: duplicate key value violates unique constraint", store.ErrEmailAlreadyExists)
	assert.Equal(t, store.ErrEmailAlreadyExists.Error(), messageFromError(wrappedPG, http.StatusConflict))

	internal := fmt.Errorf("%w: dial tcp 10.0.0.1:5432", store.ErrExecutingQuery)
	assert.Equal(t, "the request could not be completed", messageFromError(internal, http.StatusPreconditionFailed))
	assert.Equal(t, "internal server error", messageFromError(internal, http.StatusInternalServerError))
}

func TestStatusFromError_FirstMatchWins(t *testing.T) {
	err := fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, store.ErrEmailAlreadyExists)

	for range 50 {
		assert.Equal(t, http.StatusConflict, statusFromError(err, http.StatusInternalServerError))
		assert.Equal(t, store.ErrEmailAlreadyExists, matchError(err))
	}
}
