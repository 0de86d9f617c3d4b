// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/contacts-keeper/internal/config"
	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/internal/mock"
	"github.com/MKhiriev/contacts-keeper/internal/store"
	"github.com/MKhiriev/contacts-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(users, mock.NewMockAvatarStorage(ctrl), logger.Nop())
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{ID: 1, Email: "a@b.c"}, nil)
	users.EXPECT().FindUserByID(ctx, int64(2)).Return(models.User{}, store.ErrUserNotFound)

	got, err := svc.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", got.Email)

	_, err = svc.GetUser(ctx, 2)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_UpdateAvatar(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads and stores url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		avatars := mock.NewMockAvatarStorage(ctrl)
		svc := NewUserService(users, avatars, logger.Nop())
		file := strings.NewReader("png")
		url := "http://cdn/avatars/1-x.png"

		users.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{ID: 1, Email: "a@b.c"}, nil)
		avatars.EXPECT().
			SaveAvatar(ctx, gomock.Any(), file, int64(3), "image/png").
			DoAndReturn(func(_ context.Context, name string, _ any, _ int64, _ string) (string, error) {
				assert.True(t, strings.HasPrefix(name, "1-"), name)
				assert.True(t, strings.HasSuffix(name, ".png"), name)
				return url, nil
			})
		users.EXPECT().SetAvatar(ctx, "a@b.c", url).Return(models.User{ID: 1, Email: "a@b.c", Avatar: &url}, nil)

		got, err := svc.UpdateAvatar(ctx, 1, file, 3, "image/png")
		require.NoError(t, err)
		require.NotNil(t, got.Avatar)
		assert.Equal(t, url, *got.Avatar)
	})

	t.Run("rejects unsupported content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewUserService(mock.NewMockUserRepository(ctrl), mock.NewMockAvatarStorage(ctrl), logger.Nop())

		_, err := svc.UpdateAvatar(ctx, 1, strings.NewReader("x"), 1, "text/plain")
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorIs(t, err, ErrInvalidAvatar)

		_, err = svc.UpdateAvatar(ctx, 1, strings.NewReader(""), 0, "image/png")
		assert.ErrorIs(t, err, ErrInvalidAvatar)
	})

	t.Run("upload failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		avatars := mock.NewMockAvatarStorage(ctrl)
		svc := NewUserService(users, avatars, logger.Nop())

		users.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{ID: 1, Email: "a@b.c"}, nil)
		avatars.EXPECT().SaveAvatar(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", store.ErrAvatarNotSaved)

		_, err := svc.UpdateAvatar(ctx, 1, strings.NewReader("x"), 1, "image/jpeg")
		assert.ErrorIs(t, err, store.ErrAvatarNotSaved)
	})
}

func TestHealthService(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockHealthChecker(ctrl)
	ctx := context.Background()

	svc := NewHealthService(checker, config.App{Version: "1.2.3"}, logger.Nop())
	assert.Equal(t, "1.2.3", svc.Version(ctx))
	assert.Equal(t, defaultVersion, NewHealthService(checker, config.App{}, logger.Nop()).Version(ctx))

	checker.EXPECT().Check(ctx).Return(nil)
	assert.NoError(t, svc.Check(ctx))

	checker.EXPECT().Check(ctx).Return(store.ErrStorageUnavailable)
	assert.ErrorIs(t, svc.Check(ctx), store.ErrStorageUnavailable)
}

func TestLogMailer(t *testing.T) {
	m := NewLogMailer(logger.Nop())
	assert.NoError(t, m.SendConfirmationEmail(context.Background(), "a@b.c", "ann", "http://x"))
}
