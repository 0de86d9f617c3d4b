// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestFileAvatarStorage_SaveAvatar(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "avatars")
	s, err := NewFileAvatarStorage(dir, "http://localhost:8000/", logger.Nop())
	require.NoError(t, err)

	url, err := s.SaveAvatar(context.Background(), "1.png", strings.NewReader("png-bytes"), 9, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/avatars/1.png", url)

	content, err := os.ReadFile(filepath.Join(dir, "1.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestFileAvatarStorage_SaveAvatar_StaysInDirectory(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileAvatarStorage(dir, "http://api", logger.Nop())
	require.NoError(t, err)

	url, err := s.SaveAvatar(context.Background(), "../../etc/evil.png", strings.NewReader("x"), 1, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://api/avatars/evil.png", url)

	_, err = os.Stat(filepath.Join(dir, "evil.png"))
	assert.NoError(t, err)
}

func TestFileAvatarStorage_SaveAvatar_Errors(t *testing.T) {
	s, err := NewFileAvatarStorage(t.TempDir(), "http://api", logger.Nop())
	require.NoError(t, err)

	_, err = s.SaveAvatar(context.Background(), "", strings.NewReader("x"), 1, "image/png")
	assert.ErrorIs(t, err, ErrAvatarNotSaved)

	_, err = s.SaveAvatar(context.Background(), "broken.png", failingReader{}, 1, "image/png")
	assert.ErrorIs(t, err, ErrAvatarNotSaved)
}
