// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client input before it reaches the storage
// layer.
//
// A [Validator] accepts any supported model and, optionally, the names of
// the fields to check. With no field names a type-specific default set is
// validated. Every failure is one of the sentinel errors in this package,
// so callers can map them with [errors.Is].
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
