package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/snipelabs/snipe-giveaway/giveaway"
	"github.com/snipelabs/snipe-giveaway/models"
	"github.com/snipelabs/snipe-giveaway/testutil"
)

func setupRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	st := testutil.SetupTestStore(t)
	svc := giveaway.NewService(st)
	return NewRouter(svc, st, testutil.GetTestConfig())
}

func TestEndToEndScenario(t *testing.T) {
	mux := setupRouter(t)

	do := func(req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		return w
	}

	// First registration succeeds with id 1
	w := do(testutil.MakeRequest("POST", "/api/giveaway/enter", models.EnterRequest{
		Email: "a@x.com", Telegram: "tg", XUsername: "xu", Wallet: "0xabc",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var enter models.EnterResponse
	testutil.AssertJSON(t, w, &enter)
	if enter.Entry.ID != 1 {
		t.Errorf("Expected id 1, got %d", enter.Entry.ID)
	}

	w = do(testutil.MakeRequest("GET", "/api/giveaway/count", nil, nil))
	var count models.CountResponse
	testutil.AssertJSON(t, w, &count)
	if count.Count != 1 {
		t.Errorf("Expected count 1, got %d", count.Count)
	}

	// Same email again is rejected and changes nothing
	w = do(testutil.MakeRequest("POST", "/api/giveaway/enter", models.EnterRequest{
		Email: "a@x.com", Telegram: "tg", XUsername: "xu",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusConflict)

	w = do(testutil.MakeRequest("GET", "/api/giveaway/count", nil, nil))
	testutil.AssertJSON(t, w, &count)
	if count.Count != 1 {
		t.Errorf("Expected count still 1 after duplicate, got %d", count.Count)
	}

	// Second email succeeds with id 2
	w = do(testutil.MakeRequest("POST", "/api/giveaway/enter", models.EnterRequest{
		Email: "b@x.com", Telegram: "tg2", XUsername: "xu2",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &enter)
	if enter.Entry.ID != 2 {
		t.Errorf("Expected id 2, got %d", enter.Entry.ID)
	}

	// Listing returns both, newest first
	w = do(testutil.MakeRequest("GET", "/api/giveaway/entries", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var list models.EntriesResponse
	testutil.AssertJSON(t, w, &list)
	if list.Count != 2 {
		t.Fatalf("Expected 2 entries, got %d", list.Count)
	}
	if list.Entries[0].Email != "b@x.com" || list.Entries[1].Email != "a@x.com" {
		t.Errorf("Expected [b, a], got [%s, %s]", list.Entries[0].Email, list.Entries[1].Email)
	}

	// Export carries both rows
	w = do(testutil.MakeRequest("GET", "/api/giveaway/export", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	if !strings.Contains(body, `"a@x.com"`) || !strings.Contains(body, `"b@x.com"`) {
		t.Errorf("Expected both entries in CSV, got %q", body)
	}

	// Health reflects the entry count
	w = do(testutil.MakeRequest("GET", "/health", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var health models.HealthResponse
	testutil.AssertJSON(t, w, &health)
	if health.Status != "healthy" || health.Entries != 2 {
		t.Errorf("Expected healthy with 2 entries, got %+v", health)
	}
}

func TestRootIndex(t *testing.T) {
	mux := setupRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "/api/giveaway/enter") {
		t.Errorf("Expected endpoint index at root, got %q", w.Body.String())
	}
}

func TestRootStaticDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>signup</h1>"), 0o644); err != nil {
		t.Fatalf("Failed to write static file: %v", err)
	}

	st := testutil.SetupTestStore(t)
	svc := giveaway.NewService(st)
	cfg := testutil.GetTestConfig()
	cfg.StaticDir = dir
	mux := NewRouter(svc, st, cfg)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "signup") {
		t.Errorf("Expected static index, got %q", w.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := setupRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/health", nil, nil))

	testutil.AssertStatus(t, w, http.StatusMethodNotAllowed)
}
