// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the catalog.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging and request metrics are handled in this
// package before requests are delegated to the service layer. Every error
// response is a JSON object of the form {"msg": "..."}.
package http
