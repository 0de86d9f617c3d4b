// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/contacts-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// MaxListLimit caps the page size of contact listings.
const MaxListLimit = 500

var (
	contactsTable = models.Contact{}.TableName()
	usersTable    = models.User{}.TableName()
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var contactColumns = []string{
	"id",
	"first_name",
	"second_name",
	"email",
	"phone",
	"birth_date",
	"user_id",
}

var userColumns = []string{
	"id",
	"username",
	"email",
	"password",
	"created_at",
	"avatar",
	"refresh_token",
	"confirmed",
}

// lookupColumns whitelists the columns a single-field lookup may filter on.
var lookupColumns = map[models.ContactField]string{
	models.ContactFieldID:         "id",
	models.ContactFieldEmail:      "email",
	models.ContactFieldPhone:      "phone",
	models.ContactFieldFirstName:  "first_name",
	models.ContactFieldSecondName: "second_name",
	models.ContactFieldBirthDate:  "birth_date",
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func clampLimit(limit int) uint64 {
	switch {
	case limit < 0:
		return 0
	case limit > MaxListLimit:
		return MaxListLimit
	}
	return uint64(limit)
}

func clampOffset(offset int) uint64 {
	if offset < 0 {
		return 0
	}
	return uint64(offset)
}

func ownedBy(ownerID int64) sq.Eq {
	return sq.Eq{"user_id": ownerID}
}

// ── contacts ──────────────────────────────────────────────────────────────────

func buildListContactsQuery(ownerID int64, limit, offset int) (string, []any, error) {
	return psql.Select(contactColumns...).
		From(contactsTable).
		Where(ownedBy(ownerID)).
		OrderBy("id ASC").
		Limit(clampLimit(limit)).
		Offset(clampOffset(offset)).
		ToSql()
}

func buildGetContactQuery(ownerID, id int64) (string, []any, error) {
	return psql.Select(contactColumns...).
		From(contactsTable).
		Where(ownedBy(ownerID)).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildGetContactByQuery(ownerID int64, field models.ContactField, value any) (string, []any, error) {
	column, ok := lookupColumns[field]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidLookupField, field)
	}

	return psql.Select(contactColumns...).
		From(contactsTable).
		Where(ownedBy(ownerID)).
		Where(sq.Eq{column: value}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
}

func buildCreateContactQuery(contact models.Contact) (string, []any, error) {
	return psql.Insert(contactsTable).
		Columns("first_name", "second_name", "email", "phone", "birth_date", "user_id").
		Values(contact.FirstName, contact.SecondName, contact.Email, contact.Phone, contact.BirthDate, contact.UserID).
		Suffix(returning(contactColumns)).
		ToSql()
}

func buildUpdateContactQuery(ownerID, id int64, fields models.ContactFields) (string, []any, error) {
	return psql.Update(contactsTable).
		Set("first_name", fields.FirstName).
		Set("second_name", fields.SecondName).
		Set("email", fields.Email).
		Set("phone", fields.Phone).
		Set("birth_date", fields.BirthDate).
		Where(sq.Eq{"id": id}).
		Where(ownedBy(ownerID)).
		Suffix(returning(contactColumns)).
		ToSql()
}

func buildDeleteContactQuery(ownerID, id int64) (string, []any, error) {
	return psql.Delete(contactsTable).
		Where(sq.Eq{"id": id}).
		Where(ownedBy(ownerID)).
		Suffix(returning(contactColumns)).
		ToSql()
}

func buildBirthdayContactsQuery(ownerID int64, window birthdayWindow) (string, []any, error) {
	query := psql.Select(contactColumns...).
		From(contactsTable).
		Where(ownedBy(ownerID))

	switch {
	case window.all:
	case window.wraps:
		query = query.Where(sq.Or{
			sq.Expr(birthdayKey+" >= ?", window.from),
			sq.Expr(birthdayKey+" <= ?", window.to),
		})
	default:
		query = query.Where(sq.Expr(birthdayKey+" BETWEEN ? AND ?", window.from, window.to))
	}

	return query.OrderBy("id ASC").ToSql()
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildFindUserQuery(where sq.Eq) (string, []any, error) {
	return psql.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(usersTable).
		Columns("username", "email", "password", "avatar").
		Values(user.Username, user.Email, user.Password, user.Avatar).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSetRefreshTokenQuery(userID int64, token *string) (string, []any, error) {
	return psql.Update(usersTable).
		Set("refresh_token", token).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildConfirmEmailQuery(email string) (string, []any, error) {
	return psql.Update(usersTable).
		Set("confirmed", true).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSetAvatarQuery(email, url string) (string, []any, error) {
	return psql.Update(usersTable).
		Set("avatar", url).
		Where(sq.Eq{"email": email}).
		Suffix(returning(userColumns)).
		ToSql()
}
