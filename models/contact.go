// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Contact is a personal contact record owned by exactly one user.
type Contact struct {
	// ID is the storage-assigned identifier of the contact.
	ID int64 `json:"id"`

	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	BirthDate  Date   `json:"birth_date"`

	// UserID is the owner of the contact. It is set from the
	// authenticated identity and never from client input.
	UserID int64 `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// ContactFields is the validated client input for creating or
// replacing a contact.
type ContactFields struct {
	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	BirthDate  Date   `json:"birth_date"`
}

// ToContact builds a [Contact] owned by ownerID from the input fields.
// The identifier is left zero and is assigned by storage.
func (f ContactFields) ToContact(ownerID int64) Contact {
	return Contact{
		FirstName:  f.FirstName,
		SecondName: f.SecondName,
		Email:      f.Email,
		Phone:      f.Phone,
		BirthDate:  f.BirthDate,
		UserID:     ownerID,
	}
}

// ContactField selects the column used by a single-field contact lookup.
type ContactField string

const (
	ContactFieldID         ContactField = "id"
	ContactFieldEmail      ContactField = "email"
	ContactFieldPhone      ContactField = "phone"
	ContactFieldFirstName  ContactField = "first_name"
	ContactFieldSecondName ContactField = "second_name"
	ContactFieldBirthDate  ContactField = "birth_date"
)

// IsValid reports whether f is one of the known lookup fields.
func (f ContactField) IsValid() bool {
	switch f {
	case ContactFieldID, ContactFieldEmail, ContactFieldPhone,
		ContactFieldFirstName, ContactFieldSecondName, ContactFieldBirthDate:
		return true
	}
	return false
}

func (f ContactField) String() string {
	return string(f)
}

// Pagination selects a page of a contact listing.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ContactLookup is a single-field equality lookup.
type ContactLookup struct {
	Field ContactField
	Value any
}
