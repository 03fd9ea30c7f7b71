// Copyright (c) 2025 Snipe Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/snipelabs/snipe-giveaway/middleware"
	"github.com/snipelabs/snipe-giveaway/models"
	"github.com/snipelabs/snipe-giveaway/store"
)

const serviceName = "SNIPE Giveaway API"

type HealthHandler struct {
	store   store.Storage
	started time.Time
}

func NewHealthHandler(st store.Storage, started time.Time) *HealthHandler {
	return &HealthHandler{store: st, started: started}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	count, err := h.store.CountEntries(r.Context())
	if err != nil {
		middleware.JSONResponse(w, http.StatusInternalServerError, models.HealthResponse{
			Status:    "unhealthy",
			Service:   serviceName,
			Database:  "error",
			Uptime:    int64(now.Sub(h.started).Seconds()),
			Timestamp: now.UTC().Format(time.RFC3339),
			Error:     err.Error(),
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Service:   serviceName,
		Database:  "connected",
		Entries:   count,
		Uptime:    int64(now.Sub(h.started).Seconds()),
		Started:   humanize.Time(h.started),
		Timestamp: now.UTC().Format(time.RFC3339),
	})
}
