// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/internal/utils"
	"github.com/MKhiriev/contacts-keeper/models"
	"github.com/go-chi/chi/v5"
)

const (
	defaultListLimit = 10

	contactIDParam   = "id"
	lookupValueParam = "value"
)

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := utils.GetUserIDFromContext(r.Context())

	page, err := paginationFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contacts, err := h.services.ContactService.ListContacts(r.Context(), ownerID, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := contactIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.GetContact(r.Context(), ownerID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

// getContactBy returns the handler of a single-field lookup route. The
// path value is passed as a string except for birth dates, which must be
// YYYY-MM-DD.
func (h *Handler) getContactBy(field models.ContactField) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, _ := utils.GetUserIDFromContext(r.Context())
		raw := chi.URLParam(r, lookupValueParam)

		var value any = raw
		if field == models.ContactFieldBirthDate {
			date, err := models.ParseDate(raw)
			if err != nil {
				writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidPathParam, err))
				return
			}
			value = date
		}

		lookup := models.ContactLookup{Field: field, Value: value}
		contact, err := h.services.ContactService.GetContactBy(r.Context(), ownerID, lookup)
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, contact, http.StatusOK)
	}
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := utils.GetUserIDFromContext(r.Context())

	var fields models.ContactFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	contact, err := h.services.ContactService.CreateContact(r.Context(), ownerID, fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("contact_id", contact.ID).Msg("contact created")
	utils.WriteJSON(w, contact, http.StatusCreated)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := contactIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var fields models.ContactFields
	if err = json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	contact, err := h.services.ContactService.UpdateContact(r.Context(), ownerID, id, fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := contactIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.services.ContactService.DeleteContact(r.Context(), ownerID, id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("contact_id", id).Msg("contact deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) birthdayList(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := utils.GetUserIDFromContext(r.Context())

	contacts, err := h.services.ContactService.UpcomingBirthdays(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

func contactIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, contactIDParam), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidPathParam, contactIDParam, err)
	}
	return id, nil
}

// paginationFromQuery reads limit and offset. Missing values take the
// defaults; range checks are left to the service validators.
func paginationFromQuery(r *http.Request) (models.Pagination, error) {
	page := models.Pagination{Limit: defaultListLimit}
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return models.Pagination{}, fmt.Errorf("%w: limit: %w", ErrInvalidQueryParam, err)
		}
		page.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return models.Pagination{}, fmt.Errorf("%w: offset: %w", ErrInvalidQueryParam, err)
		}
		page.Offset = offset
	}

	return page, nil
}
