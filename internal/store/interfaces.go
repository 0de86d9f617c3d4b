// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/contacts-keeper/models"
)

// ContactRepository stores contacts. Every method is scoped to ownerID: a
// contact of another user behaves exactly like a missing one.
type ContactRepository interface {
	// ListContacts returns up to limit contacts ordered by id, skipping
	// offset. limit is clamped to [0, MaxListLimit].
	ListContacts(ctx context.Context, ownerID int64, limit, offset int) ([]models.Contact, error)
	GetContact(ctx context.Context, ownerID, id int64) (models.Contact, error)
	// GetContactBy returns the first contact (by id) whose field equals value.
	GetContactBy(ctx context.Context, ownerID int64, field models.ContactField, value any) (models.Contact, error)
	CreateContact(ctx context.Context, ownerID int64, fields models.ContactFields) (models.Contact, error)
	// UpdateContact overwrites all mutable fields of the contact.
	UpdateContact(ctx context.Context, ownerID, id int64, fields models.ContactFields) (models.Contact, error)
	// DeleteContact removes the contact and returns it as it was.
	DeleteContact(ctx context.Context, ownerID, id int64) (models.Contact, error)
	// ListContactsByBirthday returns contacts whose birthday (month and day)
	// falls within [start, end].
	ListContactsByBirthday(ctx context.Context, ownerID int64, start, end models.Date) ([]models.Contact, error)
}

// UserRepository stores user accounts.
type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// SetRefreshToken overwrites the stored refresh token; nil clears it.
	SetRefreshToken(ctx context.Context, userID int64, token *string) error
	ConfirmEmail(ctx context.Context, email string) error
	SetAvatar(ctx context.Context, email, url string) (models.User, error)
}

// AvatarStorage persists uploaded avatar images and returns their public URL.
type AvatarStorage interface {
	SaveAvatar(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
}

// HealthChecker reports whether the database answers queries.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// ErrorClassificator classifies a database error.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
