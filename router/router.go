// Copyright (c) 2025 Snipe Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"time"

	"github.com/snipelabs/snipe-giveaway/cliparse"
	"github.com/snipelabs/snipe-giveaway/giveaway"
	"github.com/snipelabs/snipe-giveaway/handlers"
	"github.com/snipelabs/snipe-giveaway/middleware"
	"github.com/snipelabs/snipe-giveaway/store"
)

const apiIndex = `SNIPE Giveaway API

POST /api/giveaway/enter    - Submit new entry
GET  /api/giveaway/entries  - Get all entries
GET  /api/giveaway/count    - Get entry count
GET  /api/giveaway/export   - Download CSV
GET  /health                - Health check
`

func NewRouter(svc *giveaway.Service, st store.Storage, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	giveawayHandler := handlers.NewGiveawayHandler(svc)
	healthHandler := handlers.NewHealthHandler(st, time.Now())

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Giveaway API
	mux.HandleFunc("POST /api/giveaway/enter", middleware.WithLogging(giveawayHandler.Enter))
	mux.HandleFunc("GET /api/giveaway/entries", middleware.WithLogging(giveawayHandler.List))
	mux.HandleFunc("GET /api/giveaway/count", middleware.WithLogging(giveawayHandler.Count))
	mux.HandleFunc("GET /api/giveaway/export", middleware.WithLogging(giveawayHandler.Export))

	// Root: signup form when a static dir is configured, plain index otherwise
	if cfg.StaticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))
	} else {
		mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(apiIndex))
		})
	}

	return mux
}
