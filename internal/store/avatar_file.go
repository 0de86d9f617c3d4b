// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/contacts-keeper/internal/logger"
)

// AvatarURLPrefix is the path under which locally stored avatars are served.
const AvatarURLPrefix = "/avatars/"

// fileAvatarStorage writes avatars into a local directory that the HTTP
// server exposes under [AvatarURLPrefix].
type fileAvatarStorage struct {
	dir     string
	baseURL string
	logger  *logger.Logger
}

// NewFileAvatarStorage creates dir if needed and returns an [AvatarStorage]
// writing into it. baseURL is the public URL of the API server.
func NewFileAvatarStorage(dir, baseURL string, logger *logger.Logger) (AvatarStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating avatar directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating file avatar storage")
	return &fileAvatarStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}, nil
}

// SaveAvatar writes r to a file named after the base of name. size and
// contentType are not needed on disk.
func (s *fileAvatarStorage) SaveAvatar(ctx context.Context, name string, r io.Reader, _ int64, _ string) (string, error) {
	log := logger.FromContext(ctx)

	fileName := filepath.Base(filepath.Clean("/" + name))
	if fileName == "/" || fileName == "." {
		return "", fmt.Errorf("%w: empty file name", ErrAvatarNotSaved)
	}

	path := filepath.Join(s.dir, fileName)
	f, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("func", "fileAvatarStorage.SaveAvatar").Str("path", path).Msg("error creating avatar file")
		return "", fmt.Errorf("%w: %w", ErrAvatarNotSaved, err)
	}
	defer f.Close()

	if _, err = io.Copy(f, r); err != nil {
		log.Err(err).Str("func", "fileAvatarStorage.SaveAvatar").Str("path", path).Msg("error writing avatar file")
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: %w", ErrAvatarNotSaved, err)
	}

	return s.baseURL + AvatarURLPrefix + fileName, nil
}
