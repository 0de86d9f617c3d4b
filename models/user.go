// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns contacts.
// Credential-related fields are never serialized to JSON.
type User struct {
	// ID is the storage-assigned identifier of the user.
	ID int64 `json:"id"`

	// Username is the display name chosen at signup.
	Username string `json:"username"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// Password stores the argon2id-encoded password hash.
	// It is never plaintext once the user has been persisted.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// Avatar is the public URL of the user's avatar, if any.
	Avatar *string `json:"avatar"`

	// RefreshToken is the currently valid refresh token.
	// A nil value means the user is logged out.
	RefreshToken *string `json:"-"`

	// Confirmed reports whether the user has confirmed their email.
	Confirmed bool `json:"confirmed"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserFields is the signup payload.
type UserFields struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToUser maps signup input to a [User] with the given password hash.
func (f UserFields) ToUser(passwordHash string) User {
	return User{
		Username: f.Username,
		Email:    f.Email,
		Password: passwordHash,
	}
}

// SignupResponse is returned by the signup endpoint.
type SignupResponse struct {
	User   User   `json:"user"`
	Detail string `json:"detail"`
}

// RequestEmail is the payload of the "resend confirmation" endpoint.
type RequestEmail struct {
	Email string `json:"email"`
}
