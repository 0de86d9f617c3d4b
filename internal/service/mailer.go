// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/contacts-keeper/internal/logger"
)

// logMailer writes confirmation links to the log instead of sending them.
type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer returns a Mailer that logs every message at info level.
func NewLogMailer(logger *logger.Logger) Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) SendConfirmationEmail(_ context.Context, email, username, link string) error {
	m.logger.Info().
		Str("email", email).
		Str("username", username).
		Str("link", link).
		Msg("confirmation email")
	return nil
}
