// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/internal/service"
	"github.com/MKhiriev/craft-catalog/internal/utils"
)

// auth is an HTTP middleware that enforces token authentication.
//
// It extracts the token from the "Authorization" header, resolves it to a
// live user via [service.AuthService.Authenticate] and stores the user in the
// request context with [utils.WithUser] before delegating to the next
// handler.
//
// The request is rejected with 401 Unauthorized when:
//   - the header is absent or malformed ([ErrEmptyAuthorizationHeader],
//     [ErrInvalidAuthorizationHeader], [ErrUnsupportedAuthScheme],
//     [ErrEmptyToken]);
//   - the token is invalid, expired, or names a user that no longer exists
//     ([service.ErrTokenIsInvalid]).
//
// Any other failure while resolving the user is answered with 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			h.authFailure("header")
			writeError(w, r, err, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsInvalid) {
				h.authFailure("invalid_token")
			}
			writeError(w, r, err, http.StatusInternalServerError)
			return
		}

		logger.FromContext(ctx).Debug().Int64("user_id", user.UserID).Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form
//
//	Authorization: <scheme> <token>
//
// where scheme is "Bearer" or "JWT", compared case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found {
		return "", ErrInvalidAuthorizationHeader
	}

	if !strings.EqualFold(scheme, "Bearer") && !strings.EqualFold(scheme, "JWT") {
		return "", ErrUnsupportedAuthScheme
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
