// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/internal/service"
	"github.com/MKhiriev/contacts-keeper/internal/store"
	"github.com/MKhiriev/contacts-keeper/internal/utils"
)

// detailNotFound is the fixed body detail of every 404.
const detailNotFound = "Not Found"

var errorStatusMap = map[error]int{
	ErrInvalidJSON:       http.StatusUnprocessableEntity,
	ErrInvalidPathParam:  http.StatusUnprocessableEntity,
	ErrInvalidQueryParam: http.StatusUnprocessableEntity,
	ErrInvalidForm:       http.StatusUnprocessableEntity,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	service.ErrValidation:              http.StatusUnprocessableEntity,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrEmailNotConfirmed:       http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrInvalidRefreshToken:     http.StatusUnauthorized,
	service.ErrInvalidEmailToken:       http.StatusBadRequest,

	store.ErrUserNotFound:       http.StatusUnauthorized,
	store.ErrContactNotFound:    http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrInvalidLookupField: http.StatusUnprocessableEntity,
	store.ErrStorageUnavailable: http.StatusInternalServerError,
	store.ErrAvatarNotSaved:     http.StatusInternalServerError,
}

// statusFromError returns the HTTP status of err and the sentinel it
// matched. target is nil for unknown errors, which are 500.
func statusFromError(err error) (status int, target error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// detailFromError picks the client visible detail. Validation errors keep
// the full chain so the client sees which field failed.
func detailFromError(err error, status int, target error) string {
	switch {
	case status == http.StatusNotFound:
		return detailNotFound
	case status >= http.StatusInternalServerError || target == nil:
		return http.StatusText(status)
	case errors.Is(err, service.ErrValidation):
		return err.Error()
	default:
		return target.Error()
	}
}

// writeError logs err and writes the mapped status with a detail body.
// A 401 also carries the bearer WWW-Authenticate challenge.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, target := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", bearerScheme)
	}
	utils.WriteDetail(w, detailFromError(err, status, target), status)
}
