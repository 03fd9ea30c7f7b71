// Copyright (c) 2025 Snipe Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists giveaway entries and the denormalized entry counter.

# Backends

Storage is implemented by two interchangeable backends selected at startup:

	st, err := store.Open("postgres", databaseURL)
	st, err := store.Open("sqlite", "giveaway.db")

Postgres uses lib/pq; SQLite uses the cgo-free modernc.org/sqlite driver.
Both speak database/sql and share the same semantics; they differ only in
DDL dialect, placeholder style, and duplicate-key detection.

# Atomicity

CreateEntry wraps the entry insert and the counter increment in a single
SQL transaction. A duplicate email aborts the transaction before the
increment; a failed increment (e.g. missing stats row) rolls back the
insert. Readers therefore never observe an entry without its counter
increment or vice versa. No application-level locking is involved:
concurrency control is delegated entirely to the database.

# Initialization

Init is idempotent: tables are created with IF NOT EXISTS and the stats
row is seeded only when absent, so an existing counter survives restarts.
*/
package store
