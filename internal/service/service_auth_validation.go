// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/craft-catalog/internal/validators"
	"github.com/MKhiriev/craft-catalog/models"
)

// AuthValidationService checks signup and profile payloads before they reach
// the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) IssueToken(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	return v.inner.IssueToken(ctx, credentials)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return v.inner.Authenticate(ctx, tokenString)
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, request models.SignUpRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RegisterUser(ctx, request)
}

func (v *AuthValidationService) GetProfile(ctx context.Context) (models.User, error) {
	return v.inner.GetProfile(ctx)
}

func (v *AuthValidationService) UpdateProfile(ctx context.Context, update models.UserUpdate) (int64, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateProfile(ctx, update)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
