package models

import "time"

// Request types

type EnterRequest struct {
	Email     string `json:"email"`
	Telegram  string `json:"telegram"`
	XUsername string `json:"xusername"`
	Wallet    string `json:"wallet"`
}

// Response types

type EnterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Entry   Entry  `json:"entry"`
}

type EntriesResponse struct {
	Success bool    `json:"success"`
	Entries []Entry `json:"entries"`
	Count   int     `json:"count"`
}

type CountResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Database  string `json:"database"`
	Entries   int    `json:"entries,omitempty"`
	Uptime    int64  `json:"uptime"`
	Started   string `json:"started,omitempty"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

// Domain types

type Entry struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Telegram  string    `json:"telegram"`
	XUsername string    `json:"xusername"`
	Wallet    *string   `json:"wallet"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats is the denormalized entry counter, kept in lockstep with the
// entries table by the storage layer.
type Stats struct {
	TotalEntries int       `json:"total_entries"`
	LastUpdated  time.Time `json:"last_updated"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
