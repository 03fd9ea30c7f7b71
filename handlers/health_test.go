package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/snipelabs/snipe-giveaway/models"
	"github.com/snipelabs/snipe-giveaway/testutil"
)

func TestHealthCheck(t *testing.T) {
	st := testutil.SetupTestStore(t)
	testutil.SeedEntry(t, st, "a@x.com", "t1", "x1", nil)

	handler := NewHealthHandler(st, time.Now().Add(-time.Minute))

	req := testutil.MakeRequest("GET", "/health", nil, nil)
	w := httptest.NewRecorder()

	handler.Check(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HealthResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != "healthy" {
		t.Errorf("Expected healthy, got %q", resp.Status)
	}
	if resp.Database != "connected" {
		t.Errorf("Expected database connected, got %q", resp.Database)
	}
	if resp.Entries != 1 {
		t.Errorf("Expected 1 entry, got %d", resp.Entries)
	}
	if resp.Uptime < 59 {
		t.Errorf("Expected uptime of about a minute, got %d", resp.Uptime)
	}
	if resp.Timestamp == "" {
		t.Error("Expected timestamp to be set")
	}
}

func TestHealthCheckUnhealthy(t *testing.T) {
	st := testutil.SetupTestStore(t)
	st.Close()

	handler := NewHealthHandler(st, time.Now())

	req := testutil.MakeRequest("GET", "/health", nil, nil)
	w := httptest.NewRecorder()

	handler.Check(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.HealthResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != "unhealthy" {
		t.Errorf("Expected unhealthy, got %q", resp.Status)
	}
	if resp.Database != "error" {
		t.Errorf("Expected database error, got %q", resp.Database)
	}
	if resp.Error == "" {
		t.Error("Expected error detail in health payload")
	}
}
