// Copyright (c) 2025 Snipe Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/snipelabs/snipe-giveaway/models"
)

// SQLite stores entries in an embedded SQLite database via modernc.org/sqlite.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens the database file at path, creating it if needed.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	// Each pooled connection to an in-memory DSN gets its own empty
	// database, so pin the pool to a single connection.
	if strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory") {
		db.SetMaxOpenConns(1)
	}

	return &SQLite{db: db}, nil
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS giveaway_entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    email TEXT UNIQUE NOT NULL,
    telegram TEXT NOT NULL,
    xusername TEXT NOT NULL,
    wallet TEXT,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS giveaway_stats (
    id INTEGER PRIMARY KEY,
    total_entries INTEGER NOT NULL DEFAULT 0,
    last_updated DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Init creates the schema and seeds the stats row. Safe to call multiple
// times - uses IF NOT EXISTS and INSERT OR IGNORE.
func (s *SQLite) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO giveaway_stats (id, total_entries) VALUES (1, 0)
	`)
	if err != nil {
		return fmt.Errorf("failed to seed stats: %w", err)
	}

	return nil
}

func (s *SQLite) CreateEntry(ctx context.Context, email, telegram, xusername string, wallet *string) (*models.Entry, error) {
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO giveaway_entries (email, telegram, xusername, wallet, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`, email, telegram, xusername, wallet, now).Scan(&id)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE giveaway_stats
		SET total_entries = total_entries + 1, last_updated = ?
		WHERE id = 1
	`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	} else if n != 1 {
		return nil, ErrStatsMissing
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.Entry{
		ID:        id,
		Email:     email,
		Telegram:  telegram,
		XUsername: xusername,
		Wallet:    wallet,
		CreatedAt: now,
	}, nil
}

func (s *SQLite) ListEntries(ctx context.Context) ([]models.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, email, telegram, xusername, wallet, created_at
		FROM giveaway_entries
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.ID, &e.Email, &e.Telegram, &e.XUsername, &e.Wallet, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	return entries, nil
}

func (s *SQLite) CountEntries(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM giveaway_entries`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

func (s *SQLite) Stats(ctx context.Context) (*models.Stats, error) {
	var st models.Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT total_entries, last_updated FROM giveaway_stats WHERE id = 1
	`).Scan(&st.TotalEntries, &st.LastUpdated)
	if err == sql.ErrNoRows {
		return nil, ErrStatsMissing
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	return &st, nil
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
