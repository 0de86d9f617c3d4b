// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/contacts-keeper/internal/validators"
	"github.com/MKhiriev/contacts-keeper/models"
)

// ContactValidationService rejects invalid input with [ErrValidation]
// before it reaches the wrapped ContactService.
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService() ContactServiceWrapper {
	return &ContactValidationService{
		validator: validators.NewContactValidator(),
	}
}

func (v *ContactValidationService) Wrap(inner ContactService) ContactService {
	v.inner = inner
	return v
}

func (v *ContactValidationService) ListContacts(ctx context.Context, ownerID int64, page models.Pagination) ([]models.Contact, error) {
	if err := v.validate(ctx, page); err != nil {
		return nil, err
	}
	return v.inner.ListContacts(ctx, ownerID, page)
}

func (v *ContactValidationService) GetContact(ctx context.Context, ownerID, id int64) (models.Contact, error) {
	if err := v.validate(ctx, id); err != nil {
		return models.Contact{}, err
	}
	return v.inner.GetContact(ctx, ownerID, id)
}

func (v *ContactValidationService) GetContactBy(ctx context.Context, ownerID int64, lookup models.ContactLookup) (models.Contact, error) {
	if err := v.validate(ctx, lookup); err != nil {
		return models.Contact{}, err
	}
	return v.inner.GetContactBy(ctx, ownerID, lookup)
}

func (v *ContactValidationService) CreateContact(ctx context.Context, ownerID int64, fields models.ContactFields) (models.Contact, error) {
	if err := v.validate(ctx, fields); err != nil {
		return models.Contact{}, err
	}
	return v.inner.CreateContact(ctx, ownerID, fields)
}

func (v *ContactValidationService) UpdateContact(ctx context.Context, ownerID, id int64, fields models.ContactFields) (models.Contact, error) {
	if err := v.validate(ctx, id); err != nil {
		return models.Contact{}, err
	}
	if err := v.validate(ctx, fields); err != nil {
		return models.Contact{}, err
	}
	return v.inner.UpdateContact(ctx, ownerID, id, fields)
}

func (v *ContactValidationService) DeleteContact(ctx context.Context, ownerID, id int64) (models.Contact, error) {
	if err := v.validate(ctx, id); err != nil {
		return models.Contact{}, err
	}
	return v.inner.DeleteContact(ctx, ownerID, id)
}

func (v *ContactValidationService) UpcomingBirthdays(ctx context.Context, ownerID int64) ([]models.Contact, error) {
	return v.inner.UpcomingBirthdays(ctx, ownerID)
}

func (v *ContactValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
