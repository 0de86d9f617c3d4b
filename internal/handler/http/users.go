// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/contacts-keeper/internal/utils"
)

const (
	avatarFormField = "file"

	// maxAvatarSize bounds the multipart body of an avatar upload.
	maxAvatarSize = 5 << 20
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarSize)
	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidForm, err))
		return
	}

	file, header, err := r.FormFile(avatarFormField)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %s: %w", ErrInvalidForm, avatarFormField, err))
		return
	}
	defer file.Close()

	user, err := h.services.UserService.UpdateAvatar(r.Context(), userID, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
