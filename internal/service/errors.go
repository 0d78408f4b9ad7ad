// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers a missing field, an unknown email and a
	// wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrNoActingUser is returned when the context carries no authenticated
	// user.
	ErrNoActingUser = errors.New("no authenticated user in context")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
