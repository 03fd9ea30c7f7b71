// Copyright (c) 2025 Snipe Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package giveaway

import (
	"context"
	"strings"

	"github.com/snipelabs/snipe-giveaway/models"
	"github.com/snipelabs/snipe-giveaway/store"
)

// ValidationError reports required fields that were missing from a
// registration, in submission-form order.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Service is the registration service and read facade over the entry
// store. It is the only writer to the store.
type Service struct {
	store store.Storage
}

func NewService(st store.Storage) *Service {
	return &Service{store: st}
}

// Register validates the submission and creates the entry plus counter
// increment as one unit of work. Returns *ValidationError before any
// storage access when required fields are missing, and
// store.ErrDuplicateEmail when the email is already registered.
func (s *Service) Register(ctx context.Context, email, telegram, xusername, wallet string) (*models.Entry, error) {
	email = strings.TrimSpace(email)
	telegram = strings.TrimSpace(telegram)
	xusername = strings.TrimSpace(xusername)
	wallet = strings.TrimSpace(wallet)

	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if telegram == "" {
		missing = append(missing, "telegram")
	}
	if xusername == "" {
		missing = append(missing, "xusername")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	// Wallet is optional; empty normalizes to null.
	var w *string
	if wallet != "" {
		w = &wallet
	}

	return s.store.CreateEntry(ctx, email, telegram, xusername, w)
}

// ListEntries returns all entries, newest first.
func (s *Service) ListEntries(ctx context.Context) ([]models.Entry, error) {
	return s.store.ListEntries(ctx)
}

// CountEntries returns the number of stored entries.
func (s *Service) CountEntries(ctx context.Context) (int, error) {
	return s.store.CountEntries(ctx)
}

// Stats returns the denormalized counter row.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	return s.store.Stats(ctx)
}
