// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrValidation = errors.New("validation failed")

	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrEmailNotConfirmed       = errors.New("email not confirmed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrInvalidRefreshToken     = errors.New("invalid refresh token")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrInvalidEmailToken       = errors.New("verification error")

	ErrInvalidAvatar = errors.New("avatar must be a png, jpeg, gif or webp image")
)

// Messages returned by the email confirmation flow.
const (
	MessageEmailConfirmed        = "Email confirmed"
	MessageEmailAlreadyConfirmed = "Your email is already confirmed"
	MessageCheckEmail            = "Check your email for confirmation."
	MessageUserCreated           = "User successfully created. Check your email for confirmation."
)
