// Copyright (c) 2025 Snipe Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the giveaway API.

# Handler Types

  - GiveawayHandler: Entry submission, listing, count, and CSV export
  - HealthHandler: Health check with database status and uptime

Handlers are created via constructor functions:

	giveawayHandler := handlers.NewGiveawayHandler(svc)
	healthHandler := handlers.NewHealthHandler(st, time.Now())

# Error Translation

The service error taxonomy maps to HTTP statuses:

	*giveaway.ValidationError  → 400 (names the missing fields)
	store.ErrDuplicateEmail    → 409 "Email already registered"
	anything else              → 500 "Database error" (detail goes to the log)

All error bodies use the {success:false, error} envelope.
*/
package handlers
