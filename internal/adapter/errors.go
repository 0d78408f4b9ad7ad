// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors returned for non-2xx responses.
var (
	ErrValidation   = errors.New("request rejected as invalid")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")

	// ErrServer covers 5xx answers and 412, which the server uses for
	// store failures.
	ErrServer = errors.New("server failed to process the request")

	ErrUnexpectedStatus = errors.New("unexpected response status")
)
