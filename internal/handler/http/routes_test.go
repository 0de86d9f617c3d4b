// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/contacts-keeper/internal/config"
	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/internal/mock"
	"github.com/MKhiriev/contacts-keeper/internal/service"
	"github.com/MKhiriev/contacts-keeper/internal/store"
	"github.com/MKhiriev/contacts-keeper/internal/utils"
	"github.com/MKhiriev/contacts-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memContactRepository is an in-memory store.ContactRepository with the
// same owner isolation as the SQL one.
type memContactRepository struct {
	mu       sync.Mutex
	nextID   int64
	contacts []models.Contact
}

func (m *memContactRepository) ListContacts(_ context.Context, ownerID int64, limit, offset int) ([]models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	owned := []models.Contact{}
	for _, c := range m.contacts {
		if c.UserID == ownerID {
			owned = append(owned, c)
		}
	}
	if offset >= len(owned) {
		return []models.Contact{}, nil
	}
	return owned[offset:min(offset+limit, len(owned))], nil
}

func (m *memContactRepository) GetContact(_ context.Context, ownerID, id int64) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.index(ownerID, id); i >= 0 {
		return m.contacts[i], nil
	}
	return models.Contact{}, store.ErrContactNotFound
}

func (m *memContactRepository) GetContactBy(_ context.Context, ownerID int64, field models.ContactField, value any) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.contacts {
		if c.UserID != ownerID {
			continue
		}
		switch {
		case field == models.ContactFieldEmail && c.Email == value,
			field == models.ContactFieldPhone && c.Phone == value,
			field == models.ContactFieldFirstName && c.FirstName == value,
			field == models.ContactFieldSecondName && c.SecondName == value,
			field == models.ContactFieldBirthDate && c.BirthDate == value:
			return c, nil
		}
	}
	return models.Contact{}, store.ErrContactNotFound
}

func (m *memContactRepository) CreateContact(_ context.Context, ownerID int64, fields models.ContactFields) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	c := fields.ToContact(ownerID)
	c.ID = m.nextID
	m.contacts = append(m.contacts, c)
	return c, nil
}

func (m *memContactRepository) UpdateContact(_ context.Context, ownerID, id int64, fields models.ContactFields) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(ownerID, id)
	if i < 0 {
		return models.Contact{}, store.ErrContactNotFound
	}
	c := fields.ToContact(ownerID)
	c.ID = id
	m.contacts[i] = c
	return c, nil
}

func (m *memContactRepository) DeleteContact(_ context.Context, ownerID, id int64) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(ownerID, id)
	if i < 0 {
		return models.Contact{}, store.ErrContactNotFound
	}
	c := m.contacts[i]
	m.contacts = slices.Delete(m.contacts, i, i+1)
	return c, nil
}

func (m *memContactRepository) ListContactsByBirthday(_ context.Context, ownerID int64, start, end models.Date) ([]models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.Contact{}
	for _, c := range m.contacts {
		if c.UserID == ownerID && store.BirthdayInRange(c.BirthDate, start, end) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memContactRepository) index(ownerID, id int64) int {
	return slices.IndexFunc(m.contacts, func(c models.Contact) bool {
		return c.ID == id && c.UserID == ownerID
	})
}

// newScenarioServer serves the real router over the real contact and auth
// services. Only contacts are stored; users are never looked up because
// access tokens are verified by signature.
func newScenarioServer(t *testing.T) (*httptest.Server, config.App) {
	t.Helper()
	ctrl := gomock.NewController(t)

	appCfg := config.App{
		TokenSignKey:        "scenario-secret",
		TokenIssuer:         "contacts-keeper",
		AccessTokenDuration: time.Hour,
	}
	log := logger.Nop()

	contacts := service.NewContactValidationService().Wrap(service.NewContactService(&memContactRepository{}, log))
	services := &service.Services{
		ContactService: contacts,
		AuthService:    service.NewAuthService(mock.NewMockUserRepository(ctrl), mock.NewMockMailer(ctrl), appCfg, log),
	}

	h := NewHandler(services, config.Server{RateLimitRequests: 100, RateLimitWindow: time.Minute}, "", log)
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return srv, appCfg
}

func clientFor(t *testing.T, srv *httptest.Server, cfg config.App, userID int64) *apiClient {
	t.Helper()
	token, err := utils.GenerateUserToken(cfg.TokenIssuer, userID, models.ScopeAccessToken, cfg.AccessTokenDuration, cfg.TokenSignKey)
	require.NoError(t, err)
	return newAPIClient(srv.URL + "/api").withBearer(token.String())
}

func TestScenario_OwnerIsolation(t *testing.T) {
	srv, cfg := newScenarioServer(t)
	alice := clientFor(t, srv, cfg, 1)
	bob := clientFor(t, srv, cfg, 2)

	fields := models.ContactFields{
		FirstName:  "Carol",
		SecondName: "Doe",
		Email:      "carol@example.com",
		Phone:      "+380501112233",
		BirthDate:  models.NewDate(1985, 3, 14),
	}

	var created models.Contact
	resp, err := alice.R().SetBody(fields).SetResult(&created).Post("/contacts")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "Carol", created.FirstName)

	path := "/contacts/" + itoa(created.ID)

	var fetched models.Contact
	resp, err = alice.R().SetResult(&fetched).Get(path)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, created, fetched)

	resp, err = alice.R().Get("/contacts/by_email/carol@example.com")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = bob.R().Get(path)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.JSONEq(t, `{"detail":"Not Found"}`, resp.String())

	var bobs []models.Contact
	resp, err = bob.R().SetResult(&bobs).Get("/contacts")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Empty(t, bobs)

	resp, err = bob.R().Delete(path)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	resp, err = alice.R().Delete(path)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())

	resp, err = alice.R().Get(path)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	resp, err = alice.R().Delete(path)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.JSONEq(t, `{"detail":"Not Found"}`, resp.String())
}

func TestScenario_ValidationAndPaging(t *testing.T) {
	srv, cfg := newScenarioServer(t)
	alice := clientFor(t, srv, cfg, 1)

	for i := range 3 {
		fields := models.ContactFields{
			FirstName:  "Name" + itoa(int64(i)),
			SecondName: "Doe",
			Email:      "n" + itoa(int64(i)) + "@example.com",
			Phone:      "+1" + itoa(int64(i)),
			BirthDate:  models.NewDate(1990, 1, i+1),
		}
		resp, err := alice.R().SetBody(fields).Post("/contacts")
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())
	}

	var page []models.Contact
	resp, err := alice.R().SetResult(&page).SetQueryParams(map[string]string{"limit": "2", "offset": "1"}).Get("/contacts")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, page, 2)
	assert.Equal(t, "Name1", page[0].FirstName)

	resp, err = alice.R().SetQueryParam("limit", "-1").Get("/contacts")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())

	resp, err = alice.R().Get("/contacts/0")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())

	resp, err = alice.R().SetBody(models.ContactFields{FirstName: "x"}).Post("/contacts")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())

	resp, err = newAPIClient(srv.URL + "/api").R().Get("/contacts")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
