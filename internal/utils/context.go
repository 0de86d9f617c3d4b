// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds helpers shared by the HTTP handlers, services and
// stores: typed context keys, JSON response writing, JWT issuing and
// parsing, password hashing, Gravatar URLs, uuid generation and a resty
// client wrapper.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they cannot collide
// with string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the context key of the authenticated user id.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user id from ctx.
// ok is false when the value is missing or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
