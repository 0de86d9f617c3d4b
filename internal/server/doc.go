// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server of the contacts API.
//
// It owns the server lifecycle: startup, waiting for SIGTERM, SIGINT or
// SIGQUIT, and graceful shutdown that lets in-flight requests finish.
package server
