// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/contacts-keeper/internal/config"
	"github.com/MKhiriev/contacts-keeper/internal/logger"
)

// Storages groups every storage dependency of the service layer.
type Storages struct {
	ContactRepository ContactRepository
	UserRepository    UserRepository
	AvatarStorage     AvatarStorage
	HealthChecker     HealthChecker
}

// NewStorages builds the repositories over db and selects the avatar
// backend: the S3 bucket when an endpoint is configured, the local
// directory otherwise.
func NewStorages(ctx context.Context, db *DB, cfg config.Storage, publicBaseURL string, logger *logger.Logger) (*Storages, error) {
	avatars, err := newAvatarStorage(ctx, cfg, publicBaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating avatar storage: %w", err)
	}

	return &Storages{
		ContactRepository: NewContactRepository(db, logger),
		UserRepository:    NewUserRepository(db, logger),
		AvatarStorage:     avatars,
		HealthChecker:     db,
	}, nil
}

func newAvatarStorage(ctx context.Context, cfg config.Storage, publicBaseURL string, logger *logger.Logger) (AvatarStorage, error) {
	if cfg.S3.Enabled() {
		return NewMinioAvatarStorage(ctx, cfg.S3, logger)
	}
	return NewFileAvatarStorage(cfg.Files.AvatarDir, publicBaseURL, logger)
}
