// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMinio struct {
	exists      bool
	existsErr   error
	makeErr     error
	putErr      error
	madeBucket  string
	putObject   string
	putBody     string
	contentType string
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeMinio) MakeBucket(_ context.Context, bucket string, _ minio.MakeBucketOptions) error {
	f.madeBucket = bucket
	return f.makeErr
}

func (f *fakeMinio) PutObject(_ context.Context, _, object string, r io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	body, _ := io.ReadAll(r)
	f.putObject = object
	f.putBody = string(body)
	f.contentType = opts.ContentType
	return minio.UploadInfo{Key: object}, nil
}

func TestNewMinioAvatarStorage_EnsuresBucket(t *testing.T) {
	t.Run("creates missing bucket", func(t *testing.T) {
		api := &fakeMinio{}
		_, err := newMinioAvatarStorageWithAPI(context.Background(), api, "avatars", "http://minio:9000", logger.Nop())
		require.NoError(t, err)
		assert.Equal(t, "avatars", api.madeBucket)
	})

	t.Run("keeps existing bucket", func(t *testing.T) {
		api := &fakeMinio{exists: true}
		_, err := newMinioAvatarStorageWithAPI(context.Background(), api, "avatars", "http://minio:9000", logger.Nop())
		require.NoError(t, err)
		assert.Empty(t, api.madeBucket)
	})

	t.Run("check fails", func(t *testing.T) {
		api := &fakeMinio{existsErr: errors.New("denied")}
		_, err := newMinioAvatarStorageWithAPI(context.Background(), api, "avatars", "http://minio:9000", logger.Nop())
		assert.Error(t, err)
	})

	t.Run("create fails", func(t *testing.T) {
		api := &fakeMinio{makeErr: errors.New("denied")}
		_, err := newMinioAvatarStorageWithAPI(context.Background(), api, "avatars", "http://minio:9000", logger.Nop())
		assert.Error(t, err)
	})
}

func TestMinioAvatarStorage_SaveAvatar(t *testing.T) {
	api := &fakeMinio{exists: true}
	s, err := newMinioAvatarStorageWithAPI(context.Background(), api, "avatars", "http://minio:9000/", logger.Nop())
	require.NoError(t, err)

	url, err := s.SaveAvatar(context.Background(), "u1.png", strings.NewReader("img"), 3, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000/avatars/u1.png", url)
	assert.Equal(t, "u1.png", api.putObject)
	assert.Equal(t, "img", api.putBody)
	assert.Equal(t, "image/png", api.contentType)

	api.putErr = errors.New("upload failed")
	_, err = s.SaveAvatar(context.Background(), "u2.png", strings.NewReader("img"), 3, "image/png")
	assert.ErrorIs(t, err, ErrAvatarNotSaved)
}
