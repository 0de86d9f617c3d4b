// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/MKhiriev/contacts-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestNewBirthdayWindow(t *testing.T) {
	tests := []struct {
		name  string
		start models.Date
		end   models.Date
		want  birthdayWindow
	}{
		{
			name:  "same month",
			start: models.NewDate(2024, 2, 1),
			end:   models.NewDate(2024, 2, 10),
			want:  birthdayWindow{from: 201, to: 210},
		},
		{
			name:  "across month boundary",
			start: models.NewDate(2024, 1, 28),
			end:   models.NewDate(2024, 2, 14),
			want:  birthdayWindow{from: 128, to: 214},
		},
		{
			name:  "across year boundary",
			start: models.NewDate(2024, 12, 28),
			end:   models.NewDate(2025, 1, 4),
			want:  birthdayWindow{from: 1228, to: 104, wraps: true},
		},
		{
			name:  "single day",
			start: models.NewDate(2024, 7, 4),
			end:   models.NewDate(2024, 7, 4),
			want:  birthdayWindow{from: 704, to: 704},
		},
		{
			name:  "full year",
			start: models.NewDate(2023, 3, 1),
			end:   models.NewDate(2024, 2, 29),
			want:  birthdayWindow{all: true},
		},
		{
			name:  "one day short of a year",
			start: models.NewDate(2023, 3, 1),
			end:   models.NewDate(2024, 2, 28),
			want:  birthdayWindow{from: 301, to: 228, wraps: true},
		},
		{
			name:  "end before start",
			start: models.NewDate(2024, 2, 10),
			end:   models.NewDate(2024, 2, 1),
			want:  birthdayWindow{empty: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newBirthdayWindow(tt.start, tt.end))
		})
	}
}

func TestBirthdayWindow_Contains(t *testing.T) {
	feb1 := models.NewDate(1990, 2, 1)
	feb5 := models.NewDate(1985, 2, 5)
	feb20 := models.NewDate(2001, 2, 20)
	dec30 := models.NewDate(1970, 12, 30)
	jan2 := models.NewDate(1999, 1, 2)
	jun15 := models.NewDate(1960, 6, 15)

	tests := []struct {
		name    string
		start   models.Date
		end     models.Date
		match   []models.Date
		noMatch []models.Date
	}{
		{
			name:    "Feb 1 to Feb 10",
			start:   models.NewDate(2024, 2, 1),
			end:     models.NewDate(2024, 2, 10),
			match:   []models.Date{feb1, feb5},
			noMatch: []models.Date{feb20, dec30, jan2},
		},
		{
			name:    "Jan 28 to Feb 14",
			start:   models.NewDate(2024, 1, 28),
			end:     models.NewDate(2024, 2, 14),
			match:   []models.Date{feb1, feb5},
			noMatch: []models.Date{feb20, jan2},
		},
		{
			name:    "Dec 28 to Jan 4",
			start:   models.NewDate(2024, 12, 28),
			end:     models.NewDate(2025, 1, 4),
			match:   []models.Date{dec30, jan2},
			noMatch: []models.Date{feb1, jun15},
		},
		{
			name:  "whole year",
			start: models.NewDate(2024, 1, 1),
			end:   models.NewDate(2025, 1, 1),
			match: []models.Date{feb1, feb20, dec30, jan2, jun15},
		},
		{
			name:    "reversed window",
			start:   models.NewDate(2024, 3, 1),
			end:     models.NewDate(2024, 1, 1),
			noMatch: []models.Date{feb1, jan2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, d := range tt.match {
				assert.True(t, BirthdayInRange(d, tt.start, tt.end), "expected %s to match", d)
			}
			for _, d := range tt.noMatch {
				assert.False(t, BirthdayInRange(d, tt.start, tt.end), "expected %s not to match", d)
			}
		})
	}
}
