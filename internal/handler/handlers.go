// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers of the server.
package handler

import (
	"github.com/MKhiriev/contacts-keeper/internal/config"
	"github.com/MKhiriev/contacts-keeper/internal/handler/http"
	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler. The local avatar directory is only
// served when avatars are not kept in an object store.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	avatarDir := cfg.Storage.Files.AvatarDir
	if cfg.Storage.S3.Enabled() {
		avatarDir = ""
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Server, avatarDir, logger),
	}, nil
}
