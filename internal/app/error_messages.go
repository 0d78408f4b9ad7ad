// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the catalog HTTP handlers
// and middleware. They end up in the "msg" field of JSON error bodies.
package app

const (
	// MsgInternalServerError is written when a failure has no better
	// client-facing description.
	MsgInternalServerError = "internal server error"

	// MsgRequestNotCompleted is written when the store rejected or failed an
	// otherwise valid request.
	MsgRequestNotCompleted = "the request could not be completed"

	// MsgNotFound is written for unknown routes and for methods a route
	// does not serve.
	MsgNotFound = "not found"
)
