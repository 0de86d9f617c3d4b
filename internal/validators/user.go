// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/contacts-keeper/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
)

const (
	minUsernameLength = 5
	maxUsernameLength = 16
	minPasswordLength = 6
	maxPasswordLength = 64
)

// UserValidator implements [Validator] for signup input.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserFields:
		return v.validateUserFields(value, fields...)
	case *models.UserFields:
		return v.validateUserFields(*value, fields...)
	case models.RequestEmail:
		return validateEmail(value.Email)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUserFields(f models.UserFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if n := utf8.RuneCountInString(f.Username); n < minUsernameLength || n > maxUsernameLength {
				return ErrInvalidUsername
			}
		case FieldEmail:
			if err := validateEmail(f.Email); err != nil {
				return err
			}
		case FieldPassword:
			if n := utf8.RuneCountInString(f.Password); n < minPasswordLength || n > maxPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
