// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"

	"github.com/MKhiriev/craft-catalog/models"
)

// Field names accepted by [UserValidator].
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

var userFields = []string{FieldName, FieldEmail, FieldPassword}

// UserValidator checks signup requests and profile updates.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.SignUpRequest and models.UserUpdate, by value or
// by pointer.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) == 0 {
		fields = userFields
	}

	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(value, fields)
	case *models.SignUpRequest:
		return v.validateSignUp(*value, fields)

	case models.UserUpdate:
		return v.validateUserUpdate(value, fields)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value, fields)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignUp(request models.SignUpRequest, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(request.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if !isEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUserUpdate(update models.UserUpdate, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldName:
			if update.Name != nil && isBlank(*update.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if update.Email != nil && !isEmail(*update.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if update.Password != nil && *update.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isEmail accepts a bare address only, without a display name.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
