// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/models"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository] over the "contacts" table.
//
// Reads use one pooled connection per call; mutations run in their own
// transaction.
type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by db.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(&c.ID, &c.FirstName, &c.SecondName, &c.Email, &c.Phone, &c.BirthDate, &c.UserID)
	return c, err
}

// ListContacts returns a page of the owner's contacts ordered by id.
// An empty page is an empty slice.
func (r *contactRepository) ListContacts(ctx context.Context, ownerID int64, limit, offset int) ([]models.Contact, error) {
	query, args, err := buildListContactsQuery(ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryContacts(ctx, "contactRepository.ListContacts", ownerID, query, args)
}

// GetContact returns the contact with id when it belongs to ownerID.
func (r *contactRepository) GetContact(ctx context.Context, ownerID, id int64) (models.Contact, error) {
	query, args, err := buildGetContactQuery(ownerID, id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryContact(ctx, r.DB.DB, "contactRepository.GetContact", ownerID, query, args)
}

// GetContactBy returns the first of the owner's contacts whose field
// equals value. The field is checked against a column whitelist.
func (r *contactRepository) GetContactBy(ctx context.Context, ownerID int64, field models.ContactField, value any) (models.Contact, error) {
	query, args, err := buildGetContactByQuery(ownerID, field, value)
	if err != nil {
		if errors.Is(err, ErrInvalidLookupField) {
			return models.Contact{}, err
		}
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryContact(ctx, r.DB.DB, "contactRepository.GetContactBy", ownerID, query, args)
}

// CreateContact inserts a contact owned by ownerID and returns the stored
// record with its new id.
func (r *contactRepository) CreateContact(ctx context.Context, ownerID int64, fields models.ContactFields) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateContactQuery(fields.ToContact(ownerID))
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Contact
	err = r.withTx(ctx, func(tx *sql.Tx) error {
		var txErr error
		created, txErr = r.queryContact(ctx, tx, "contactRepository.CreateContact", ownerID, query, args)
		return txErr
	})
	if err != nil {
		return models.Contact{}, err
	}

	log.Debug().
		Str("func", "contactRepository.CreateContact").
		Int64("user_id", ownerID).
		Int64("contact_id", created.ID).
		Msg("contact created")

	return created, nil
}

// UpdateContact overwrites the five mutable fields of the owner's contact.
// Nothing is written when the contact does not exist for ownerID.
func (r *contactRepository) UpdateContact(ctx context.Context, ownerID, id int64, fields models.ContactFields) (models.Contact, error) {
	query, args, err := buildUpdateContactQuery(ownerID, id, fields)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Contact
	err = r.withTx(ctx, func(tx *sql.Tx) error {
		var txErr error
		updated, txErr = r.queryContact(ctx, tx, "contactRepository.UpdateContact", ownerID, query, args)
		return txErr
	})
	if err != nil {
		return models.Contact{}, err
	}

	return updated, nil
}

// DeleteContact removes the owner's contact and returns its last state.
func (r *contactRepository) DeleteContact(ctx context.Context, ownerID, id int64) (models.Contact, error) {
	query, args, err := buildDeleteContactQuery(ownerID, id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted models.Contact
	err = r.withTx(ctx, func(tx *sql.Tx) error {
		var txErr error
		deleted, txErr = r.queryContact(ctx, tx, "contactRepository.DeleteContact", ownerID, query, args)
		return txErr
	})
	if err != nil {
		return models.Contact{}, err
	}

	return deleted, nil
}

// ListContactsByBirthday matches birthdays on month and day only. Windows
// crossing a month or a year boundary are matched correctly.
func (r *contactRepository) ListContactsByBirthday(ctx context.Context, ownerID int64, start, end models.Date) ([]models.Contact, error) {
	window := newBirthdayWindow(start, end)
	if window.empty {
		return []models.Contact{}, nil
	}

	query, args, err := buildBirthdayContactsQuery(ownerID, window)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryContacts(ctx, "contactRepository.ListContactsByBirthday", ownerID, query, args)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *contactRepository) queryContact(ctx context.Context, q queryRower, funcName string, ownerID int64, query string, args []any) (models.Contact, error) {
	log := logger.FromContext(ctx)

	contact, err := scanContact(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("user_id", ownerID).
			Msg("failed to query contact")
		return models.Contact{}, r.wrapError(ErrExecutingQuery, err)
	}

	return contact, nil
}

func (r *contactRepository) queryContacts(ctx context.Context, funcName string, ownerID int64, query string, args []any) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("user_id", ownerID).
			Msg("failed to execute query for contacts")
		return nil, r.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		contact, scanErr := scanContact(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Int64("user_id", ownerID).
				Msg("failed to scan contact row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		contacts = append(contacts, contact)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Int64("user_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, r.wrapError(ErrScanningRows, rowsErr)
	}

	return contacts, nil
}
