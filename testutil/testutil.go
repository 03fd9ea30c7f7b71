// Copyright (c) 2025 Snipe Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/snipelabs/snipe-giveaway/cliparse"
	"github.com/snipelabs/snipe-giveaway/models"
	"github.com/snipelabs/snipe-giveaway/store"
)

// SetupTestStore returns an initialized store backed by a fresh in-memory
// SQLite database, closed automatically when the test finishes.
func SetupTestStore(t *testing.T) store.Storage {
	t.Helper()

	st, err := store.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := st.Init(context.Background()); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	t.Cleanup(func() { st.Close() })
	return st
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseType: cliparse.TypeSQLite,
		DatabaseURL:  ":memory:",
	}
}

// SeedEntry registers an entry directly against the store
func SeedEntry(t *testing.T, st store.Storage, email, telegram, xusername string, wallet *string) *models.Entry {
	t.Helper()

	entry, err := st.CreateEntry(context.Background(), email, telegram, xusername, wallet)
	if err != nil {
		t.Fatalf("Failed to seed entry %s: %v", email, err)
	}
	return entry
}

// StringPtr returns a pointer to s, for optional wallet fields
func StringPtr(s string) *string {
	return &s
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
