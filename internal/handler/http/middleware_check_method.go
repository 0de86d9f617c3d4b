// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/contacts-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

var routeMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns the handler to register with
// [chi.Mux.MethodNotAllowed].
//
// The methods registered for the matched route pattern are listed in the
// Allow header of a 405 with a `{"detail":"Method Not Allowed"}` body.
// The pattern table is collected with [chi.Walk] on the first call, after
// every route has been registered.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(CheckHTTPMethod(router))
//	// ... register routes ...
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	var (
		once  sync.Once
		table map[string]map[string]bool
	)

	return func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { table = routeMethodTable(router) })

		var allowed []string
		for _, method := range routeMethods {
			pattern := router.Find(chi.NewRouteContext(), method, r.URL.Path)
			if pattern != "" && table[trimPattern(pattern)][method] {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		utils.WriteDetail(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

// routeMethodTable maps every registered route pattern to its methods.
// Mount stubs accept any method and are not part of the table.
func routeMethodTable(router chi.Routes) map[string]map[string]bool {
	table := make(map[string]map[string]bool)
	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		route = trimPattern(route)
		if table[route] == nil {
			table[route] = make(map[string]bool)
		}
		table[route][method] = true
		return nil
	})
	return table
}

// trimPattern drops the trailing slash so "/api/contacts/" and the
// "/api/contacts" mount point resolve to the same entry.
func trimPattern(pattern string) string {
	if len(pattern) > 1 {
		return strings.TrimSuffix(pattern, "/")
	}
	return pattern
}

// notFound answers unknown paths with the API error body.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteDetail(w, detailNotFound, http.StatusNotFound)
}
