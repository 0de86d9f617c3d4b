// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/internal/service"
	"github.com/MKhiriev/contacts-keeper/internal/utils"
	"github.com/MKhiriev/contacts-keeper/models"
	"github.com/go-chi/chi/v5"
)

const emailTokenParam = "token"

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var fields models.UserFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Signup(r.Context(), fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.ID).Msg("user signed up")
	utils.WriteJSON(w, models.SignupResponse{User: user, Detail: service.MessageUserCreated}, http.StatusCreated)
}

// login accepts an OAuth2 password form where "username" carries the email.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidForm, err))
		return
	}

	email, password := r.PostForm.Get("username"), r.PostForm.Get("password")
	if email == "" || password == "" {
		writeError(w, r, fmt.Errorf("%w: username and password are required", ErrInvalidForm))
		return
	}

	pair, err := h.services.AuthService.Login(r.Context(), email, password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}

// refreshToken expects the refresh token as the bearer credential.
func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	token, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	pair, err := h.services.AuthService.RefreshToken(r.Context(), token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}

func (h *Handler) confirmedEmail(w http.ResponseWriter, r *http.Request) {
	message, err := h.services.AuthService.ConfirmEmail(r.Context(), chi.URLParam(r, emailTokenParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Message{Message: message}, http.StatusOK)
}

func (h *Handler) requestEmail(w http.ResponseWriter, r *http.Request) {
	var body models.RequestEmail
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	message, err := h.services.AuthService.RequestEmail(r.Context(), body.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Message{Message: message}, http.StatusOK)
}
