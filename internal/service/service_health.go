// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/contacts-keeper/internal/config"
	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/internal/store"
)

// defaultVersion is reported when no version was configured.
const defaultVersion = "dev"

type healthService struct {
	checker    store.HealthChecker
	appVersion string

	logger *logger.Logger
}

func NewHealthService(checker store.HealthChecker, cfg config.App, logger *logger.Logger) HealthService {
	version := cfg.Version
	if version == "" {
		version = defaultVersion
	}

	return &healthService{
		checker:    checker,
		appVersion: version,
		logger:     logger,
	}
}

// Check runs a round trip to the database.
func (s *healthService) Check(ctx context.Context) error {
	if err := s.checker.Check(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

func (s *healthService) Version(_ context.Context) string {
	return s.appVersion
}
