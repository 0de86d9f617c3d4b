// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidContactID  = errors.New("contact id must be greater than or equal to 1")
	ErrEmptyFirstName    = errors.New("first name is required")
	ErrEmptySecondName   = errors.New("second name is required")
	ErrFieldTooLong      = errors.New("field is too long")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrEmptyPhone        = errors.New("phone is required")
	ErrEmptyBirthDate    = errors.New("birth date is required")
	ErrBirthDateInFuture = errors.New("birth date is in the future")
	ErrInvalidLimit      = errors.New("limit must be greater than or equal to 0")
	ErrInvalidOffset     = errors.New("offset must be greater than or equal to 0")
	ErrInvalidLookup     = errors.New("invalid lookup field")
	ErrEmptyLookupValue  = errors.New("lookup value is required")

	ErrInvalidUsername = errors.New("username must be between 5 and 16 characters")
	ErrInvalidPassword = errors.New("password must be between 6 and 64 characters")
)
