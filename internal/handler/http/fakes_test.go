// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/craft-catalog/internal/config"
	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/internal/metrics"
	"github.com/MKhiriev/craft-catalog/internal/service"
	"github.com/MKhiriev/craft-catalog/internal/utils"
	"github.com/MKhiriev/craft-catalog/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// fakes
// ─────────────────────────────────────────────

type fakeAuthService struct {
	issueTokenFn    func(ctx context.Context, credentials models.Credentials) (models.Token, error)
	authenticateFn  func(ctx context.Context, tokenString string) (models.User, error)
	registerUserFn  func(ctx context.Context, request models.SignUpRequest) (models.User, error)
	getProfileFn    func(ctx context.Context) (models.User, error)
	updateProfileFn func(ctx context.Context, update models.UserUpdate) (int64, error)
}

func (f *fakeAuthService) IssueToken(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	return f.issueTokenFn(ctx, credentials)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return f.authenticateFn(ctx, tokenString)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, request models.SignUpRequest) (models.User, error) {
	return f.registerUserFn(ctx, request)
}

func (f *fakeAuthService) GetProfile(ctx context.Context) (models.User, error) {
	return f.getProfileFn(ctx)
}

func (f *fakeAuthService) UpdateProfile(ctx context.Context, update models.UserUpdate) (int64, error) {
	return f.updateProfileFn(ctx, update)
}

type fakeItemService struct {
	listFn   func(ctx context.Context) ([]models.Item, error)
	getFn    func(ctx context.Context, id int64) (models.Item, error)
	createFn func(ctx context.Context, item models.NewItem, image *models.ImageUpload) (models.Item, error)
	updateFn func(ctx context.Context, id int64, update models.ItemUpdate) (int64, error)
	deleteFn func(ctx context.Context, id int64) (int64, error)
}

func (f *fakeItemService) List(ctx context.Context) ([]models.Item, error) {
	return f.listFn(ctx)
}

func (f *fakeItemService) Get(ctx context.Context, id int64) (models.Item, error) {
	return f.getFn(ctx, id)
}

func (f *fakeItemService) Create(ctx context.Context, item models.NewItem, image *models.ImageUpload) (models.Item, error) {
	return f.createFn(ctx, item, image)
}

func (f *fakeItemService) Update(ctx context.Context, id int64, update models.ItemUpdate) (int64, error) {
	return f.updateFn(ctx, id, update)
}

func (f *fakeItemService) Delete(ctx context.Context, id int64) (int64, error) {
	return f.deleteFn(ctx, id)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

const testToken = "valid-token"

var testUser = models.User{UserID: 7, Name: "Ann", Email: "ann@test.com"}

// acceptingAuth resolves testToken to testUser and rejects anything else.
func acceptingAuth() *fakeAuthService {
	return &fakeAuthService{
		authenticateFn: func(_ context.Context, tokenString string) (models.User, error) {
			if tokenString != testToken {
				return models.User{}, service.ErrTokenIsInvalid
			}
			return testUser, nil
		},
	}
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()

	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{version: "test-version"}
	}

	cfg := &config.StructuredConfig{}
	cfg.Storage.Images.Dir = t.TempDir()
	cfg.Storage.Images.MaxSize = 1 << 20

	return NewHandler(services, cfg, metrics.New(), logger.Nop())
}

// serve runs one request through the full router.
func serve(t *testing.T, h *Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testToken}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

func withTestUser(r *http.Request) *http.Request {
	return r.WithContext(utils.WithUser(r.Context(), testUser))
}

func requireErrorBody(t *testing.T, rec *httptest.ResponseRecorder, status int) string {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body models.ErrorResponse
	require.NoError(t, jsonDecode(rec.Body, &body))
	require.NotEmpty(t, body.Msg)
	return body.Msg
}

func jsonDecode(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}
