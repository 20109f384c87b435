package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"gazete/internal/models"
	"gazete/internal/storage"
)

func TestUserCRUD(t *testing.T) {
	f := newFixture(t)

	w := f.do("POST", "/api/users", map[string]any{
		"username":  "editor",
		"email":     "editor@example.com",
		"password":  "gizli-parola",
		"firstName": "Fatma",
		"lastName":  "Demir",
		"role":      "editor",
	})
	f.want(w, http.StatusCreated)
	user := decodeAs[models.User](t, w)
	if !user.IsActive {
		t.Error("isActive must default to true")
	}
	if body := w.Body.String(); strings.Contains(body, "gizli-parola") || strings.Contains(body, "password") {
		t.Errorf("response leaks credentials: %s", body)
	}

	// Username and email are unique.
	f.want(f.do("POST", "/api/users", map[string]any{
		"username":  "editor",
		"email":     "other@example.com",
		"password":  "gizli-parola",
		"firstName": "X",
		"lastName":  "Y",
		"role":      "writer",
	}), http.StatusConflict)

	// Update without a password keeps the account usable; with one it
	// rotates the hash. Either way the response stays clean.
	w = f.do("PUT", fmt.Sprintf("/api/users/%d", user.ID), map[string]any{
		"username":  "editor",
		"email":     "editor@example.com",
		"firstName": "Fatma",
		"lastName":  "Demir",
		"role":      "admin",
		"isActive":  false,
	})
	f.want(w, http.StatusOK)
	updated := decodeAs[models.User](t, w)
	if updated.Role != models.RoleAdmin || updated.IsActive {
		t.Errorf("update: got role=%q active=%v", updated.Role, updated.IsActive)
	}

	tests := []struct {
		name string
		body map[string]any
	}{
		{"invalid role", map[string]any{"username": "a", "email": "a@example.com", "password": "123456", "role": "root"}},
		{"bad email", map[string]any{"username": "a", "email": "not-an-email", "password": "123456", "role": "writer"}},
		{"short password", map[string]any{"username": "a", "email": "a@example.com", "password": "123", "role": "writer"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := f.do("POST", "/api/users", tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400 (body: %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestCityAndSourceCRUD(t *testing.T) {
	f := newFixture(t)

	w := f.do("POST", "/api/cities", map[string]any{"name": "İstanbul", "code": "34"})
	f.want(w, http.StatusCreated)
	city := decodeAs[models.City](t, w)
	if city.Slug != "istanbul" {
		t.Errorf("slug: got %q", city.Slug)
	}

	w = f.do("PUT", fmt.Sprintf("/api/cities/%d", city.ID), map[string]any{"name": "İzmir", "code": "35"})
	f.want(w, http.StatusOK)

	w = f.do("POST", "/api/sources", map[string]any{
		"name": "Anadolu Ajansı",
		"type": "agency",
	})
	f.want(w, http.StatusCreated)
	source := decodeAs[models.Source](t, w)
	if !source.IsActive {
		t.Error("isActive must default to true")
	}

	f.want(f.do("POST", "/api/sources", map[string]any{
		"name": "Bilinmeyen",
		"type": "telepathy",
	}), http.StatusBadRequest)

	f.want(f.do("DELETE", fmt.Sprintf("/api/sources/%d", source.ID), nil), http.StatusNoContent)
	f.want(f.do("GET", fmt.Sprintf("/api/sources/%d", source.ID), nil), http.StatusNotFound)
}

func TestStatsAggregation(t *testing.T) {
	f := newFixture(t)
	author := f.seedAuthor("istatistik")
	cat := f.seedCategory("Gündem")

	w := f.do("POST", "/api/news", map[string]any{
		"title":      "Günün Haberi",
		"content":    "Bugün yayımlandı.",
		"status":     "published",
		"authorId":   author.ID,
		"categoryId": cat.ID,
	})
	f.want(w, http.StatusCreated)
	news := decodeAs[models.News](t, w)

	f.want(f.do("POST", fmt.Sprintf("/api/news/%d/view", news.ID), nil), http.StatusNoContent)
	f.want(f.do("POST", fmt.Sprintf("/api/news/%d/view", news.ID), nil), http.StatusNoContent)

	f.want(f.do("POST", "/api/comments", map[string]any{
		"newsId":      news.ID,
		"authorName":  "Okur",
		"authorEmail": "okur@example.com",
		"content":     "Güzel haber.",
	}), http.StatusCreated)

	w = f.do("GET", "/api/stats", nil)
	f.want(w, http.StatusOK)
	stats := decodeAs[models.Stats](t, w)
	if stats.TotalNews != 1 {
		t.Errorf("totalNews: got %d, want 1", stats.TotalNews)
	}
	if stats.ActiveWriters != 1 {
		t.Errorf("activeWriters: got %d, want 1", stats.ActiveWriters)
	}
	if stats.PendingComments != 1 {
		t.Errorf("pendingComments: got %d, want 1", stats.PendingComments)
	}
	if stats.TodayViews != 2 {
		t.Errorf("todayViews: got %d, want 2", stats.TodayViews)
	}
}

func TestMediaUnavailableWithoutFileStore(t *testing.T) {
	// The fixture runs without a configured file store; uploads answer
	// 503 while the listing endpoint keeps working.
	f := newFixture(t)

	w := f.do("GET", "/api/media", nil)
	f.want(w, http.StatusOK)
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("empty media list: got %q", body)
	}

	f.want(f.do("POST", "/api/media", nil), http.StatusServiceUnavailable)
}

// pdfBytes is a minimal payload the content sniffer reports as
// application/pdf.
var pdfBytes = []byte("%PDF-1.4\n%test document\n")

func TestMediaUploadRecordsUploader(t *testing.T) {
	files, err := storage.NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("local store: %v", err)
	}
	f := newFixtureWith(t, files, nil)
	author := f.seedAuthor("arsivci")

	w := f.doMultipart("/api/media",
		map[string]string{"uploadedBy": fmt.Sprint(author.ID)},
		"file", "bulten.pdf", pdfBytes)
	f.want(w, http.StatusCreated)
	created := decodeAs[models.Media](t, w)
	if created.UploadedBy != author.ID {
		t.Errorf("uploadedBy: got %d, want %d", created.UploadedBy, author.ID)
	}
	if created.MimeType != "application/pdf" {
		t.Errorf("mimeType: got %q", created.MimeType)
	}
	if created.OriginalName != "bulten.pdf" {
		t.Errorf("originalName: got %q", created.OriginalName)
	}
}

func TestMediaUploadRequiresUploader(t *testing.T) {
	files, err := storage.NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("local store: %v", err)
	}
	f := newFixtureWith(t, files, nil)

	tests := []struct {
		name   string
		fields map[string]string
	}{
		{"missing", nil},
		{"not a number", map[string]string{"uploadedBy": "editör"}},
		{"zero", map[string]string{"uploadedBy": "0"}},
		{"negative", map[string]string{"uploadedBy": "-3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.doMultipart("/api/media", tt.fields, "file", "bulten.pdf", pdfBytes)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400 (body: %s)", w.Code, w.Body.String())
			}
		})
	}
}
