// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/internal/store"
	"github.com/MKhiriev/contacts-keeper/models"
)

// upcomingBirthdayDays is the length of the upcoming-birthday window
// after today.
const upcomingBirthdayDays = 7

type contactService struct {
	contactRepository store.ContactRepository

	now    func() time.Time
	logger *logger.Logger
}

// NewContactService returns a ContactService backed by contactRepository.
// Input is expected to be validated by a wrapper.
func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		now:               time.Now,
		logger:            logger,
	}
}

// ListContacts returns one page of the owner's contacts. A limit above
// [store.MaxListLimit] is lowered to it.
func (s *contactService) ListContacts(ctx context.Context, ownerID int64, page models.Pagination) ([]models.Contact, error) {
	limit := min(page.Limit, store.MaxListLimit)

	contacts, err := s.contactRepository.ListContacts(ctx, ownerID, limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("error listing contacts: %w", err)
	}
	return contacts, nil
}

func (s *contactService) GetContact(ctx context.Context, ownerID, id int64) (models.Contact, error) {
	contact, err := s.contactRepository.GetContact(ctx, ownerID, id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("error getting contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) GetContactBy(ctx context.Context, ownerID int64, lookup models.ContactLookup) (models.Contact, error) {
	contact, err := s.contactRepository.GetContactBy(ctx, ownerID, lookup.Field, lookup.Value)
	if err != nil {
		return models.Contact{}, fmt.Errorf("error getting contact by %s: %w", lookup.Field, err)
	}
	return contact, nil
}

func (s *contactService) CreateContact(ctx context.Context, ownerID int64, fields models.ContactFields) (models.Contact, error) {
	contact, err := s.contactRepository.CreateContact(ctx, ownerID, fields)
	if err != nil {
		return models.Contact{}, fmt.Errorf("error creating contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) UpdateContact(ctx context.Context, ownerID, id int64, fields models.ContactFields) (models.Contact, error) {
	contact, err := s.contactRepository.UpdateContact(ctx, ownerID, id, fields)
	if err != nil {
		return models.Contact{}, fmt.Errorf("error updating contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) DeleteContact(ctx context.Context, ownerID, id int64) (models.Contact, error) {
	contact, err := s.contactRepository.DeleteContact(ctx, ownerID, id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("error deleting contact: %w", err)
	}
	return contact, nil
}

// UpcomingBirthdays queries the window today .. today+7 days in UTC.
func (s *contactService) UpcomingBirthdays(ctx context.Context, ownerID int64) ([]models.Contact, error) {
	today := models.DateOf(s.now().UTC())

	contacts, err := s.contactRepository.ListContactsByBirthday(ctx, ownerID, today, today.AddDays(upcomingBirthdayDays))
	if err != nil {
		return nil, fmt.Errorf("error listing upcoming birthdays: %w", err)
	}
	return contacts, nil
}
