// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/contacts-keeper/internal/config"
	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioAPI is the subset of *minio.Client the avatar storage needs.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// minioAvatarStorage uploads avatars into an S3-compatible bucket.
type minioAvatarStorage struct {
	api       minioAPI
	bucket    string
	publicURL string
	logger    *logger.Logger
}

// NewMinioAvatarStorage connects to the endpoint in cfg and makes sure the
// bucket exists.
func NewMinioAvatarStorage(ctx context.Context, cfg config.S3, logger *logger.Logger) (AvatarStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating minio client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http://"
		if cfg.UseSSL {
			scheme = "https://"
		}
		publicURL = scheme + cfg.Endpoint
	}

	return newMinioAvatarStorageWithAPI(ctx, client, cfg.Bucket, publicURL, logger)
}

func newMinioAvatarStorageWithAPI(ctx context.Context, api minioAPI, bucket, publicURL string, logger *logger.Logger) (*minioAvatarStorage, error) {
	s := &minioAvatarStorage{
		api:       api,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}

	if err := s.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	logger.Debug().Str("bucket", bucket).Msg("creating minio avatar storage")
	return s, nil
}

func (s *minioAvatarStorage) ensureBucketExists(ctx context.Context) error {
	exists, err := s.api.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err = s.api.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// SaveAvatar uploads r as object name and returns its public URL.
func (s *minioAvatarStorage) SaveAvatar(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	log := logger.FromContext(ctx)

	_, err := s.api.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		log.Err(err).
			Str("func", "minioAvatarStorage.SaveAvatar").
			Str("bucket", s.bucket).
			Str("object", name).
			Msg("failed to upload avatar")
		return "", fmt.Errorf("%w: %w", ErrAvatarNotSaved, err)
	}

	return s.publicURL + "/" + s.bucket + "/" + name, nil
}
