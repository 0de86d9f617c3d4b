// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/internal/utils"
	"github.com/MKhiriev/contacts-keeper/models"
)

const (
	healthyMessage  = "Welcome to FastAPI!"
	unhealthyDetail = "Error connecting to the database"
)

func (h *Handler) healthChecker(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		utils.WriteDetail(w, unhealthyDetail, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Message{Message: healthyMessage}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.HealthService.Version(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
