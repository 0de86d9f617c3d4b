// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/contacts-keeper/models"
)

// birthdayKey is the SQL expression turning a birth date into its
// month*100+day key (Feb 5 -> 205).
const birthdayKey = "(EXTRACT(MONTH FROM birth_date)::int * 100 + EXTRACT(DAY FROM birth_date)::int)"

// fullYearDays is the window length from which every month/day occurs.
const fullYearDays = 365

// birthdayWindow is a month/day range over birthday keys.
//
// A window that crosses Dec 31 wraps: it matches keys >= from OR <= to.
type birthdayWindow struct {
	from, to int
	wraps    bool
	all      bool
	empty    bool
}

func dayKey(d models.Date) int {
	return int(d.Month())*100 + d.Day()
}

// newBirthdayWindow builds the window of calendar days from start to end,
// both inclusive. Years are ignored except to measure the window length.
func newBirthdayWindow(start, end models.Date) birthdayWindow {
	startDay := models.DateOf(start.Time)
	endDay := models.DateOf(end.Time)

	if endDay.Before(startDay.Time) {
		return birthdayWindow{empty: true}
	}
	if int(endDay.Sub(startDay.Time)/(24*time.Hour)) >= fullYearDays {
		return birthdayWindow{all: true}
	}

	from, to := dayKey(startDay), dayKey(endDay)
	return birthdayWindow{from: from, to: to, wraps: from > to}
}

// contains reports whether a birth date falls in the window.
func (w birthdayWindow) contains(birthDate models.Date) bool {
	switch {
	case w.empty:
		return false
	case w.all:
		return true
	}

	key := dayKey(birthDate)
	if w.wraps {
		return key >= w.from || key <= w.to
	}
	return key >= w.from && key <= w.to
}

// BirthdayInRange reports whether the month/day of birthDate falls in the
// calendar window from start to end with the same wrapping rules the
// repository query uses.
func BirthdayInRange(birthDate, start, end models.Date) bool {
	return newBirthdayWindow(start, end).contains(birthDate)
}
