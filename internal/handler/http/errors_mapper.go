// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/craft-catalog/internal/app"
	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/internal/service"
	"github.com/MKhiriev/craft-catalog/internal/store"
	"github.com/MKhiriev/craft-catalog/internal/utils"
)

// errorStatuses lists the errors with a fixed status. The first entry an
// error matches wins, so store conflicts precede the generic validation
// error. Store failures are not listed: each route passes its own fallback.
var errorStatuses = []struct {
	err    error
	status int
}{
	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrItemNameAlreadyExists, http.StatusBadRequest},
	{store.ErrConstraintViolation, http.StatusBadRequest},
	{store.ErrItemNotFound, http.StatusNotFound},

	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidForm, http.StatusBadRequest},
	{ErrRequestTooLarge, http.StatusRequestEntityTooLarge},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrUnsupportedAuthScheme, http.StatusUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized},
	{service.ErrNoActingUser, http.StatusUnauthorized},
}

// verboseErrors are reported with the whole error chain: it only carries
// validation details supplied by the client.
var verboseErrors = []error{
	service.ErrInvalidDataProvided,
	ErrInvalidJSON,
	ErrInvalidForm,
}

// statusFromError returns the status mapped to err, or fallback when err
// matches none of the known errors.
func statusFromError(err error, fallback int) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return fallback
}

// messageFromError returns the client-facing text for err.
func messageFromError(err error, status int) string {
	for _, target := range verboseErrors {
		if errors.Is(err, target) {
			return err.Error()
		}
	}

	if target := matchError(err); target != nil {
		return target.Error()
	}

	if status >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	return app.MsgRequestNotCompleted
}

func matchError(err error) error {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.err
		}
	}
	return nil
}

// writeError logs err and writes the {"msg": ...} body with the status
// resolved from err and fallback.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback int) {
	status := statusFromError(err, fallback)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err, status), status)
}
