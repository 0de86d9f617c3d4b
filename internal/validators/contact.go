// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/contacts-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldContactID targets a contact identifier taken from the URL.
	FieldContactID = "contact_id"

	FieldFirstName  = "first_name"
	FieldSecondName = "second_name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldBirthDate  = "birth_date"

	// FieldLimit and FieldOffset target list pagination.
	FieldLimit  = "limit"
	FieldOffset = "offset"

	// FieldLookupField and FieldLookupValue target single-field lookups.
	FieldLookupField = "lookup_field"
	FieldLookupValue = "lookup_value"
)

const (
	maxNameLength  = 50
	maxEmailLength = 250
	maxPhoneLength = 50
)

// ContactValidator implements [Validator] for contact input:
// [models.ContactFields], [models.Pagination], [models.ContactLookup]
// and contact ids (int64).
type ContactValidator struct {
	now func() time.Time
}

// NewContactValidator constructs a ContactValidator that rejects birth
// dates after the current day.
func NewContactValidator() Validator {
	return &ContactValidator{now: time.Now}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of the models are accepted.
func (v *ContactValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ContactFields:
		return v.validateContactFields(ctx, value, fields...)
	case *models.ContactFields:
		return v.validateContactFields(ctx, *value, fields...)

	case models.Pagination:
		return v.validatePagination(value, fields...)
	case *models.Pagination:
		return v.validatePagination(*value, fields...)

	case models.ContactLookup:
		return v.validateLookup(value, fields...)
	case *models.ContactLookup:
		return v.validateLookup(*value, fields...)

	case int64:
		if value < 1 {
			return ErrInvalidContactID
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

// validateContactFields checks a create or replace payload. All five
// fields are validated by default.
func (v *ContactValidator) validateContactFields(_ context.Context, f models.ContactFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldSecondName, FieldEmail, FieldPhone, FieldBirthDate}
	}

	for _, field := range fields {
		switch field {
		case FieldFirstName:
			if err := requireText(f.FirstName, maxNameLength, ErrEmptyFirstName); err != nil {
				return err
			}
		case FieldSecondName:
			if err := requireText(f.SecondName, maxNameLength, ErrEmptySecondName); err != nil {
				return err
			}
		case FieldEmail:
			if err := validateEmail(f.Email); err != nil {
				return err
			}
		case FieldPhone:
			if err := requireText(f.Phone, maxPhoneLength, ErrEmptyPhone); err != nil {
				return err
			}
		case FieldBirthDate:
			if f.BirthDate.IsZero() {
				return ErrEmptyBirthDate
			}
			if f.BirthDate.After(models.DateOf(v.now()).Time) {
				return ErrBirthDateInFuture
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContactValidator) validatePagination(p models.Pagination, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit, FieldOffset}
	}

	for _, field := range fields {
		switch field {
		case FieldLimit:
			if p.Limit < 0 {
				return ErrInvalidLimit
			}
		case FieldOffset:
			if p.Offset < 0 {
				return ErrInvalidOffset
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContactValidator) validateLookup(l models.ContactLookup, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLookupField, FieldLookupValue}
	}

	for _, field := range fields {
		switch field {
		case FieldLookupField:
			if !l.Field.IsValid() {
				return ErrInvalidLookup
			}
		case FieldLookupValue:
			switch value := l.Value.(type) {
			case nil:
				return ErrEmptyLookupValue
			case string:
				if strings.TrimSpace(value) == "" {
					return ErrEmptyLookupValue
				}
			case models.Date:
				if value.IsZero() {
					return ErrEmptyLookupValue
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func requireText(s string, maxLen int, emptyErr error) error {
	if strings.TrimSpace(s) == "" {
		return emptyErr
	}
	if utf8.RuneCountInString(s) > maxLen {
		return ErrFieldTooLong
	}
	return nil
}

func validateEmail(email string) error {
	if utf8.RuneCountInString(email) > maxEmailLength {
		return ErrFieldTooLong
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}
