// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates the contacts server
// configuration.
//
// Sources are applied in the following order (later sources override
// non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry point is [GetStructuredConfig].
package config
