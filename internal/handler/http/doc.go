// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the contacts API.
//
// It wires the chi router, the request handlers for contacts, auth, users
// and health, and the middleware chain: panic recovery, real client IP,
// CORS, trace id, access log, request timeout, bearer authentication and
// the per-IP rate limit of read routes. Every error body is
// `{"detail": "..."}`; the status code is derived from the service and
// store sentinel errors through a single table in errors_mapper.go.
package http
