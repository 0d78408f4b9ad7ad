// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/internal/service"
	"github.com/MKhiriev/craft-catalog/internal/utils"
	"github.com/MKhiriev/craft-catalog/models"
)

// issueToken handles POST /token.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.IssueToken(r.Context(), credentials)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.authFailure("invalid_credentials")
		}
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", token.UserID).Msg("token issued")

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

// signUp handles POST /users.
func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var request models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), request)
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("user registered")

	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.GetProfile(r.Context())
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), http.StatusBadRequest)
		return
	}

	affected, err := h.services.AuthService.UpdateProfile(r.Context(), update)
	if err != nil {
		writeError(w, r, err, http.StatusPreconditionFailed)
		return
	}

	logger.FromRequest(r).Debug().Int64("affected", affected).Msg("profile updated")

	w.WriteHeader(http.StatusNoContent)
}
