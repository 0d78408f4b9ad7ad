// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the input rules of the catalog before anything
// reaches storage.
//
// Core concepts:
//   - Validator: generic interface to validate request models. Supports
//     optional field-level scoping for targeted validation.
//
// Usage patterns:
//  1. Construct the validator of a domain (items, users, images).
//  2. Inject it into the service that owns the domain.
//  3. Call Validate with context, value, and optional field names.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
