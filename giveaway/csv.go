// Copyright (c) 2025 Snipe Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package giveaway

import (
	"context"
	"strings"
	"time"
)

// CSVFilename is the attachment name for the export download.
const CSVFilename = "snipe_giveaway_entries.csv"

const csvHeader = `Email,Telegram,X Username,Wallet,Signup Date`

// ExportCSV renders all entries, newest first, as a CSV document with a
// fixed header row. Every field is wrapped in double quotes; a null wallet
// renders as an empty quoted field. Embedded double quotes in field values
// are NOT escaped, matching the established export format. The export is
// meant for trusted submissions only.
func (s *Service) ExportCSV(ctx context.Context) (string, error) {
	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, csvHeader)
	for _, e := range entries {
		wallet := ""
		if e.Wallet != nil {
			wallet = *e.Wallet
		}
		lines = append(lines, `"`+e.Email+`","`+e.Telegram+`","`+e.XUsername+`","`+wallet+`","`+e.CreatedAt.UTC().Format(time.RFC3339)+`"`)
	}

	return strings.Join(lines, "\n"), nil
}
