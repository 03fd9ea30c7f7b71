// Copyright (c) 2025 Snipe Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/snipelabs/snipe-giveaway/giveaway"
	"github.com/snipelabs/snipe-giveaway/middleware"
	"github.com/snipelabs/snipe-giveaway/models"
	"github.com/snipelabs/snipe-giveaway/store"
)

type GiveawayHandler struct {
	svc *giveaway.Service
}

func NewGiveawayHandler(svc *giveaway.Service) *GiveawayHandler {
	return &GiveawayHandler{svc: svc}
}

// Enter handles POST /api/giveaway/enter
func (h *GiveawayHandler) Enter(w http.ResponseWriter, r *http.Request) {
	var req models.EnterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	entry, err := h.svc.Register(r.Context(), req.Email, req.Telegram, req.XUsername, req.Wallet)
	if err != nil {
		var ve *giveaway.ValidationError
		switch {
		case errors.As(err, &ve):
			middleware.ErrorResponse(w, http.StatusBadRequest, ve.Error())
		case errors.Is(err, store.ErrDuplicateEmail):
			middleware.ErrorResponse(w, http.StatusConflict, "Email already registered")
		default:
			slog.Error("failed to register entry", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	slog.Info("entry registered", "entry_id", entry.ID)

	middleware.JSONResponse(w, http.StatusOK, models.EnterResponse{
		Success: true,
		Message: "Entry submitted successfully",
		Entry:   *entry,
	})
}

// List handles GET /api/giveaway/entries
func (h *GiveawayHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListEntries(r.Context())
	if err != nil {
		slog.Error("failed to list entries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EntriesResponse{
		Success: true,
		Entries: entries,
		Count:   len(entries),
	})
}

// Count handles GET /api/giveaway/count
func (h *GiveawayHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.CountEntries(r.Context())
	if err != nil {
		slog.Error("failed to count entries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CountResponse{
		Success: true,
		Count:   count,
	})
}

// Export handles GET /api/giveaway/export
func (h *GiveawayHandler) Export(w http.ResponseWriter, r *http.Request) {
	csv, err := h.svc.ExportCSV(r.Context())
	if err != nil {
		slog.Error("failed to export entries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+giveaway.CSVFilename+`"`)
	if _, err := w.Write([]byte(csv)); err != nil {
		slog.Error("failed to write CSV response", "error", err)
	}
}
