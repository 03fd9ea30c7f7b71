// Copyright (c) 2025 Snipe Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/snipelabs/snipe-giveaway/models"
)

// Postgres stores entries in a PostgreSQL database via lib/pq.
type Postgres struct {
	db *sql.DB
}

// NewPostgres opens a connection pool for the given connection string.
func NewPostgres(url string) (*Postgres, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	return &Postgres{db: db}, nil
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS giveaway_entries (
    id SERIAL PRIMARY KEY,
    email VARCHAR(255) UNIQUE NOT NULL,
    telegram VARCHAR(255) NOT NULL,
    xusername VARCHAR(255) NOT NULL,
    wallet VARCHAR(255),
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS giveaway_stats (
    id INTEGER PRIMARY KEY,
    total_entries INTEGER NOT NULL DEFAULT 0,
    last_updated TIMESTAMP NOT NULL DEFAULT NOW()
);
`

// Init creates the schema and seeds the stats row. Safe to call multiple
// times - uses IF NOT EXISTS and ON CONFLICT DO NOTHING.
func (s *Postgres) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO giveaway_stats (id, total_entries)
		VALUES (1, 0)
		ON CONFLICT (id) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to seed stats: %w", err)
	}

	return nil
}

func (s *Postgres) CreateEntry(ctx context.Context, email, telegram, xusername string, wallet *string) (*models.Entry, error) {
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO giveaway_entries (email, telegram, xusername, wallet, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, email, telegram, xusername, wallet, now).Scan(&id)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE giveaway_stats
		SET total_entries = total_entries + 1, last_updated = $1
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

func (s *Postgres) ListEntries(ctx context.Context) ([]models.Entry, error) {
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

func (s *Postgres) CountEntries(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM giveaway_entries`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

func (s *Postgres) Stats(ctx context.Context) (*models.Stats, error) {
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

func (s *Postgres) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Postgres) Close() error {
	return s.db.Close()
}
