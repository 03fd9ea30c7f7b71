// Copyright (c) 2025 Snipe Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/snipelabs/snipe-giveaway/models"
)

var (
	// ErrDuplicateEmail is returned by CreateEntry when the email is
	// already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrStatsMissing is returned when the singleton stats row cannot be
	// found. It aborts the registration transaction, so the entry insert
	// is rolled back along with it.
	ErrStatsMissing = errors.New("stats row missing")
)

// Storage is the persistence contract for giveaway entries. CreateEntry is
// the only mutating operation; it inserts the entry and increments the
// stats counter as one transaction, so readers never observe one without
// the other.
type Storage interface {
	// Init creates tables if absent and seeds the stats row if absent.
	// Safe to call on every startup; never resets an existing counter.
	Init(ctx context.Context) error

	// CreateEntry inserts an entry and increments the counter atomically.
	// Returns ErrDuplicateEmail if the email already exists.
	CreateEntry(ctx context.Context, email, telegram, xusername string, wallet *string) (*models.Entry, error)

	// ListEntries returns all entries, newest first.
	ListEntries(ctx context.Context) ([]models.Entry, error)

	// CountEntries returns the number of stored entries.
	CountEntries(ctx context.Context) (int, error)

	// Stats returns the singleton counter row.
	Stats(ctx context.Context) (*models.Stats, error)

	Ping(ctx context.Context) error
	Close() error
}

var (
	_ Storage = (*Postgres)(nil)
	_ Storage = (*SQLite)(nil)
)

// Open constructs the storage backend selected by configuration.
// databaseType is "sqlite" or "postgres"; dsn is a connection string for
// postgres or a file path for sqlite.
func Open(databaseType, dsn string) (Storage, error) {
	switch databaseType {
	case "sqlite":
		return NewSQLite(dsn)
	case "postgres":
		return NewPostgres(dsn)
	default:
		return nil, fmt.Errorf("unknown database type %q", databaseType)
	}
}
