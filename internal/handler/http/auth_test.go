// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/craft-catalog/internal/service"
	"github.com/MKhiriev/craft-catalog/internal/store"
	"github.com/MKhiriev/craft-catalog/internal/utils"
	"github.com/MKhiriev/craft-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// POST /token
// ─────────────────────────────────────────────

func TestIssueToken(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		issueErr   error
		wantStatus int
	}{
		{name: "success", body: `{"email":"ann@test.com","password":"secret"}`, wantStatus: http.StatusOK},
		{name: "invalid JSON", body: `{"email":`, wantStatus: http.StatusBadRequest},
		{name: "bad credentials", body: `{"email":"ann@test.com","password":"nope"}`, issueErr: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "store failure", body: `{"email":"ann@test.com","password":"secret"}`, issueErr: fmt.Errorf("%w: timeout", store.ErrExecutingQuery), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.Credentials
			h := newTestHandler(t, &service.Services{AuthService: &fakeAuthService{
				issueTokenFn: func(_ context.Context, c models.Credentials) (models.Token, error) {
					got = c
					if tt.issueErr != nil {
						return models.Token{}, tt.issueErr
					}
					return models.Token{SignedString: "signed", UserID: 7}, nil
				},
			}})

			rec := serve(t, h, http.MethodPost, "/token", tt.body, nil)

			if tt.wantStatus != http.StatusOK {
				requireErrorBody(t, rec, tt.wantStatus)
				return
			}

			require.Equal(t, http.StatusOK, rec.Code)
			var resp models.TokenResponse
			require.NoError(t, jsonDecode(rec.Body, &resp))
			assert.Equal(t, "signed", resp.Token)
			assert.Equal(t, models.Credentials{Email: "ann@test.com", Password: "secret"}, got)
		})
	}
}

// ─────────────────────────────────────────────
// POST /users
// ─────────────────────────────────────────────

func TestSignUp_Success(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &fakeAuthService{
		registerUserFn: func(_ context.Context, r models.SignUpRequest) (models.User, error) {
			return models.User{UserID: 3, Name: r.Name, Email: r.Email, Password: "$2a$hash"}, nil
		},
	}})

	rec := serve(t, h, http.MethodPost, "/users", `{"name":"Ann","email":"ann@test.com","password":"secret"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")

	var user models.User
	require.NoError(t, jsonDecode(rec.Body, &user))
	assert.Equal(t, int64(3), user.UserID)
	assert.Equal(t, "ann@test.com", user.Email)
}

func TestSignUp_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"invalid JSON", `[`, nil, http.StatusBadRequest},
		{"validation", `{"name":""}`, service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"email taken", `{"name":"Ann","email":"ann@test.com","password":"x"}`, fmt.Errorf("insert: %w", store.ErrEmailAlreadyExists), http.StatusConflict},
		{"store failure", `{"name":"Ann","email":"ann@test.com","password":"x"}`, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{AuthService: &fakeAuthService{
				registerUserFn: func(context.Context, models.SignUpRequest) (models.User, error) {
					return models.User{}, tt.err
				},
			}})

			requireErrorBody(t, serve(t, h, http.MethodPost, "/users", tt.body, nil), tt.wantStatus)
		})
	}
}

// ─────────────────────────────────────────────
// GET /user, PUT /user
// ─────────────────────────────────────────────

func TestGetProfile(t *testing.T) {
	auth := acceptingAuth()
	auth.getProfileFn = func(ctx context.Context) (models.User, error) {
		user, _ := utils.GetUserFromContext(ctx)
		return user, nil
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rec := serve(t, h, http.MethodGet, "/user", "", bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	var user models.User
	require.NoError(t, jsonDecode(rec.Body, &user))
	assert.Equal(t, testUser.UserID, user.UserID)
	assert.Equal(t, testUser.Email, user.Email)
}

func TestGetProfile_Unauthorized(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: acceptingAuth()})

	requireErrorBody(t, serve(t, h, http.MethodGet, "/user", "", map[string]string{"Authorization": "Bearer forged"}), http.StatusUnauthorized)
}

func TestUpdateProfile(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"success", `{"name":"Anna"}`, nil, http.StatusNoContent},
		{"invalid JSON", `{`, nil, http.StatusBadRequest},
		{"validation", `{"email":"nope"}`, service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"email taken", `{"email":"bob@test.com"}`, store.ErrEmailAlreadyExists, http.StatusConflict},
		{"store failure", `{"name":"Anna"}`, store.ErrExecutingQuery, http.StatusPreconditionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.UserUpdate
			auth := acceptingAuth()
			auth.updateProfileFn = func(_ context.Context, u models.UserUpdate) (int64, error) {
				got = u
				return 1, tt.err
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			rec := serve(t, h, http.MethodPut, "/user", tt.body, bearer())

			if tt.wantStatus != http.StatusNoContent {
				requireErrorBody(t, rec, tt.wantStatus)
				return
			}
			assert.Equal(t, http.StatusNoContent, rec.Code)
			require.NotNil(t, got.Name)
			assert.Equal(t, "Anna", *got.Name)
		})
	}
}
