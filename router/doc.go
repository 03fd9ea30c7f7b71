// Copyright (c) 2025 Snipe Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the giveaway API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, st, cfg)

# Endpoints

Health:

	GET /health

Giveaway:

	POST /api/giveaway/enter    - Submit entry
	GET  /api/giveaway/entries  - List all entries (newest first)
	GET  /api/giveaway/count    - Entry count
	GET  /api/giveaway/export   - CSV download

Root serves the static signup form when Config.StaticDir is set, or a
plain-text endpoint index otherwise.
*/
package router
