// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/internal/store"
	"github.com/MKhiriev/contacts-keeper/internal/utils"
	"github.com/MKhiriev/contacts-keeper/models"
)

// avatarExtensions lists the accepted avatar content types.
var avatarExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type userService struct {
	userRepository store.UserRepository
	avatarStorage  store.AvatarStorage
	uuidGenerator  *utils.UUIDGenerator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, avatarStorage store.AvatarStorage, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		avatarStorage:  avatarStorage,
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

// UpdateAvatar uploads file under a fresh object name and stores its URL
// on the user.
func (s *userService) UpdateAvatar(ctx context.Context, userID int64, file io.Reader, size int64, contentType string) (models.User, error) {
	log := logger.FromContext(ctx)

	ext, ok := avatarExtensions[contentType]
	if !ok || size <= 0 {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, ErrInvalidAvatar)
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}

	name := strconv.FormatInt(userID, 10) + "-" + s.uuidGenerator.Generate() + ext
	url, err := s.avatarStorage.SaveAvatar(ctx, name, file, size, contentType)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("avatar upload failed")
		return models.User{}, fmt.Errorf("error uploading avatar: %w", err)
	}

	updated, err := s.userRepository.SetAvatar(ctx, user.Email, url)
	if err != nil {
		return models.User{}, fmt.Errorf("error saving avatar url: %w", err)
	}
	return updated, nil
}
