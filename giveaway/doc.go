// Copyright (c) 2025 Snipe Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package giveaway implements entry registration and the read/export facade.

# Registration

Register is the single write path:

	entry, err := svc.Register(ctx, email, telegram, xusername, wallet)

Required fields (email, telegram, xusername) are trimmed and checked
before storage is touched; failures return *ValidationError naming the
missing fields. A duplicate email surfaces store.ErrDuplicateEmail. Email
matching is exact and case-sensitive.

The insert and the counter increment happen inside one storage
transaction, so a failed registration has no partial effect.

# Reads

ListEntries, CountEntries, Stats, and ExportCSV are pure reads delegated
to the store. ExportCSV does not escape embedded double quotes in field
values; this mirrors the historical export format and is a known
limitation for adversarial input.
*/
package giveaway
