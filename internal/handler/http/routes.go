// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/contacts-keeper/internal/store"
	"github.com/MKhiriev/contacts-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const defaultRequestTimeout = 30 * time.Second

// Init builds the router with every API route under /api.
func (h *Handler) Init() *chi.Mux {
	timeout := h.cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withCORS)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(middleware.Timeout(timeout))

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Route("/api", func(r chi.Router) {
		r.Get("/healthchecker", h.healthChecker)
		r.Get("/version", h.getServerVersion)

		// routes without authorization
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
			r.Get("/refresh_token", h.refreshToken)
			r.Get("/confirmed_email/{"+emailTokenParam+"}", h.confirmedEmail)
			r.Post("/request_email", h.requestEmail)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/contacts", func(r chi.Router) {
				// reads are rate limited per client IP
				r.Group(func(r chi.Router) {
					r.Use(h.withRateLimit)

					r.Get("/", h.listContacts)
					r.Get("/birthday_list", h.birthdayList)
					r.Get("/{"+contactIDParam+"}", h.getContact)
					r.Get("/by_email/{"+lookupValueParam+"}", h.getContactBy(models.ContactFieldEmail))
					r.Get("/by_phone/{"+lookupValueParam+"}", h.getContactBy(models.ContactFieldPhone))
					r.Get("/by_first_name/{"+lookupValueParam+"}", h.getContactBy(models.ContactFieldFirstName))
					r.Get("/by_second_name/{"+lookupValueParam+"}", h.getContactBy(models.ContactFieldSecondName))
					r.Get("/by_birth_date/{"+lookupValueParam+"}", h.getContactBy(models.ContactFieldBirthDate))
				})

				r.Post("/", h.createContact)
				r.Put("/{"+contactIDParam+"}", h.updateContact)
				r.Delete("/{"+contactIDParam+"}", h.deleteContact)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", h.me)
				r.Patch("/avatar", h.updateAvatar)
			})
		})
	})

	if h.avatarDir != "" {
		router.Handle(store.AvatarURLPrefix+"*",
			http.StripPrefix(store.AvatarURLPrefix, http.FileServer(http.Dir(h.avatarDir))))
	}

	return router
}
