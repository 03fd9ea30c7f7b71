// Copyright (c) 2025 Snipe Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the SNIPE Giveaway API server.

The service records giveaway sign-up entries (email, Telegram handle,
X username, optional wallet address), enforces one entry per email, and
keeps a denormalized entry counter in lockstep with the entry table.

# Starting the Server

	go run . -t sqlite -d giveaway.db

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Optional settings (flags fall back to env vars, and a .env file is loaded
when present):

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string or sqlite file path
  - STATIC_DIR (-s): Directory with the signup form, served at /
*/
package main
