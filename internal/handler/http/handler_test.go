// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/contacts-keeper/internal/config"
	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/internal/mock"
	"github.com/MKhiriev/contacts-keeper/internal/service"
	"github.com/MKhiriev/contacts-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testAccessToken       = "access.jwt.token"
	testUserID      int64 = 7
)

// testMocks is the set of service mocks behind a test Handler.
type testMocks struct {
	contacts *mock.MockContactService
	auth     *mock.MockAuthService
	users    *mock.MockUserService
	health   *mock.MockHealthService
}

// newTestHandler builds a Handler over gomock services. The access token
// testAccessToken is always accepted for testUserID.
func newTestHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		contacts: mock.NewMockContactService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
		users:    mock.NewMockUserService(ctrl),
		health:   mock.NewMockHealthService(ctrl),
	}
	m.auth.EXPECT().ParseToken(gomock.Any(), testAccessToken).
		Return(models.Token{UserID: testUserID}, nil).AnyTimes()

	services := &service.Services{
		ContactService: m.contacts,
		AuthService:    m.auth,
		UserService:    m.users,
		HealthService:  m.health,
	}
	cfg := config.Server{RateLimitRequests: 1000}

	return NewHandler(services, cfg, "", logger.Nop()), m
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testAccessToken)
	return req
}

func decodeDetail(t *testing.T, body io.Reader) string {
	t.Helper()
	var d models.Detail
	require.NoError(t, json.NewDecoder(body).Decode(&d))
	return d.Detail
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, config.Server{}, "/tmp/avatars", logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, "/tmp/avatars", h.avatarDir)
	require.NotNil(t, h.limiter)
	assert.Equal(t, defaultRateLimitRequests, h.limiter.burst)
}

func TestInit_UnknownPathIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, detailNotFound, decodeDetail(t, rec.Body))
}

func TestInit_ServesAvatarDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1-a.png"), []byte("png-bytes"), 0o600))

	h := NewHandler(&service.Services{}, config.Server{}, dir, logger.Nop())

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/avatars/1-a.png", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())
}
