// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/contacts-keeper/internal/config"
	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/internal/store"
)

type Services struct {
	ContactService ContactService
	AuthService    AuthService
	UserService    UserService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	contactService := NewContactValidationService().Wrap(NewContactService(storages.ContactRepository, logger))

	return &Services{
		ContactService: contactService,
		AuthService:    NewAuthService(storages.UserRepository, NewLogMailer(logger), cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, storages.AvatarStorage, logger),
		HealthService:  NewHealthService(storages.HealthChecker, cfg.App, logger),
	}
}
