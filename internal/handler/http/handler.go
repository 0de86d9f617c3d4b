// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/contacts-keeper/internal/config"
	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/internal/service"
)

// Handler holds everything the HTTP routes need: the service layer, the
// transport settings and the read-route rate limiter.
type Handler struct {
	services *service.Services

	cfg config.Server

	// avatarDir is served under /avatars/ when avatars are stored on the
	// local file system. Empty when an object store is used.
	avatarDir string

	limiter *ipRateLimiter

	logger *logger.Logger
}

// NewHandler creates a Handler. avatarDir may be empty.
func NewHandler(services *service.Services, cfg config.Server, avatarDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		cfg:       cfg,
		avatarDir: avatarDir,
		limiter:   newIPRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
		logger:    logger,
	}
}
