package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gazete/internal/handlers"
	"gazete/internal/memstore"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	mem := memstore.New()
	api := handlers.New(handlers.Stores{
		News:               mem.News(),
		Articles:           mem.Articles(),
		Categories:         mem.Categories(),
		Cities:             mem.Cities(),
		Sources:            mem.Sources(),
		Users:              mem.Users(),
		Comments:           mem.Comments(),
		Media:              mem.MediaFiles(),
		Ads:                mem.Ads(),
		Classifieds:        mem.Classifieds(),
		Magazines:          mem.Magazines(),
		MagazineCategories: mem.MagazineCategories(),
		NewspaperPages:     mem.NewspaperPages(),
		Stats:              mem.StatsView(),
	}, nil, nil, nil)
	r, limiter := New(api)
	t.Cleanup(limiter.Stop)
	return r
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
}

func TestBackupUnavailableWithoutManager(t *testing.T) {
	// The memory backend runs without a backup manager; the backup routes
	// must answer 503 rather than panic.
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/backup/list", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status: got %d, want 503", w.Code)
	}
}
