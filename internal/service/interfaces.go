// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ContactServiceWrapper

import (
	"context"
	"io"

	"github.com/MKhiriev/contacts-keeper/models"
)

// ContactService manages the contacts of one owner at a time.
type ContactService interface {
	ListContacts(ctx context.Context, ownerID int64, page models.Pagination) ([]models.Contact, error)
	GetContact(ctx context.Context, ownerID, id int64) (models.Contact, error)
	GetContactBy(ctx context.Context, ownerID int64, lookup models.ContactLookup) (models.Contact, error)
	CreateContact(ctx context.Context, ownerID int64, fields models.ContactFields) (models.Contact, error)
	UpdateContact(ctx context.Context, ownerID, id int64, fields models.ContactFields) (models.Contact, error)
	DeleteContact(ctx context.Context, ownerID, id int64) (models.Contact, error)

	// UpcomingBirthdays returns contacts whose birthday falls within the
	// next seven days, today included.
	UpcomingBirthdays(ctx context.Context, ownerID int64) ([]models.Contact, error)
}

// ContactServiceWrapper defines middleware composition for ContactService.
// Implementations wrap an existing ContactService to add behavior such as
// validation.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService
}

// AuthService handles accounts, credentials and the token lifecycle.
type AuthService interface {
	Signup(ctx context.Context, fields models.UserFields) (models.User, error)
	Login(ctx context.Context, email, password string) (models.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (models.TokenPair, error)

	// ConfirmEmail verifies an email token and returns a message for the
	// client.
	ConfirmEmail(ctx context.Context, token string) (string, error)

	// RequestEmail sends a new confirmation link. The message returned does
	// not reveal whether the account exists.
	RequestEmail(ctx context.Context, email string) (string, error)

	// ParseToken validates an access token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes the current user's profile.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateAvatar(ctx context.Context, userID int64, file io.Reader, size int64, contentType string) (models.User, error)
}

// HealthService reports the state of the running server.
type HealthService interface {
	Check(ctx context.Context) error
	Version(ctx context.Context) string
}

// Mailer delivers account emails.
type Mailer interface {
	SendConfirmationEmail(ctx context.Context, email, username, link string) error
}
