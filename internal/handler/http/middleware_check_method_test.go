// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		wantAllow string
	}{
		{name: "contact item", method: http.MethodPatch, path: "/api/contacts/1", wantAllow: "GET, PUT, DELETE"},
		{name: "collection", method: http.MethodDelete, path: "/api/contacts", wantAllow: "GET, POST"},
		{name: "collection put", method: http.MethodPut, path: "/api/contacts", wantAllow: "GET, POST"},
		{name: "collection patch", method: http.MethodPatch, path: "/api/contacts/", wantAllow: "GET, POST"},
		{name: "signup", method: http.MethodGet, path: "/api/auth/signup", wantAllow: "POST"},
		{name: "avatar", method: http.MethodPost, path: "/api/users/avatar", wantAllow: "PATCH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(h, authorized(httptest.NewRequest(tt.method, tt.path, nil)))

			require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
			assert.Equal(t, "Method Not Allowed", decodeDetail(t, rec.Body))
		})
	}
}

func TestRouteMethodTable(t *testing.T) {
	noop := func(http.ResponseWriter, *http.Request) {}

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", noop)
			r.Post("/", noop)
			r.Delete("/{id}", noop)
		})
	})

	table := routeMethodTable(router)

	assert.Equal(t, map[string]bool{http.MethodGet: true, http.MethodPost: true}, table["/api/items"])
	assert.Equal(t, map[string]bool{http.MethodDelete: true}, table["/api/items/{id}"])
	assert.Len(t, table, 2)
}

func TestTrimPattern(t *testing.T) {
	assert.Equal(t, "/", trimPattern("/"))
	assert.Equal(t, "/api/contacts", trimPattern("/api/contacts/"))
	assert.Equal(t, "/api/contacts/{id}", trimPattern("/api/contacts/{id}"))
}
