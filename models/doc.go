// Copyright (c) 2025 Snipe Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - EnterRequest: email, telegram, xusername, wallet

# Response Types

Types for JSON responses:

  - EnterResponse: success, message, entry
  - EntriesResponse: success, entries, count
  - CountResponse: success, count
  - HealthResponse: status, service, database, entries, uptime
  - ErrorResponse: success (false), error

# Domain Types

Entry is one giveaway registration. Email is the natural key: the storage
layer rejects a second entry with the same email. Wallet is optional and
serializes as null when absent.

Stats is the singleton counter row. TotalEntries always equals the number
of committed entries; LastUpdated is the time of the most recent successful
registration.
*/
package models
