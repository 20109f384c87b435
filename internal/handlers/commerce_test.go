package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"gazete/internal/models"
)

func TestAdCounters(t *testing.T) {
	f := newFixture(t)
	admin := f.seedAuthor("reklam")

	w := f.do("POST", "/api/advertisements", map[string]any{
		"title":     "Yaz Kampanyası",
		"position":  "header",
		"size":      "728x90",
		"createdBy": admin.ID,
	})
	f.want(w, http.StatusCreated)
	ad := decodeAs[models.Advertisement](t, w)
	if !ad.IsActive {
		t.Error("isActive must default to true")
	}

	f.want(f.do("POST", fmt.Sprintf("/api/advertisements/%d/click", ad.ID), nil), http.StatusNoContent)
	f.want(f.do("POST", fmt.Sprintf("/api/advertisements/%d/impression", ad.ID), nil), http.StatusNoContent)
	f.want(f.do("POST", fmt.Sprintf("/api/advertisements/%d/impression", ad.ID), nil), http.StatusNoContent)

	w = f.do("GET", fmt.Sprintf("/api/advertisements/%d", ad.ID), nil)
	f.want(w, http.StatusOK)
	got := decodeAs[models.Advertisement](t, w)
	if got.ClickCount != 1 || got.Impressions != 2 {
		t.Errorf("counters: got clicks=%d impressions=%d, want 1/2", got.ClickCount, got.Impressions)
	}

	// Counters survive a full update; they only move through the
	// dedicated endpoints.
	w = f.do("PUT", fmt.Sprintf("/api/advertisements/%d", ad.ID), map[string]any{
		"title":    "Yaz Kampanyası v2",
		"position": "sidebar",
		"size":     "300x250",
	})
	f.want(w, http.StatusOK)
	updated := decodeAs[models.Advertisement](t, w)
	if updated.ClickCount != 1 || updated.Impressions != 2 {
		t.Errorf("counters after update: got clicks=%d impressions=%d", updated.ClickCount, updated.Impressions)
	}

	f.want(f.do("POST", "/api/advertisements", map[string]any{
		"title":    "Kötü Reklam",
		"position": "popup",
	}), http.StatusBadRequest)

	f.want(f.do("POST", "/api/advertisements", map[string]any{
		"title":     "Ters Tarihli",
		"position":  "footer",
		"startDate": "2026-09-01T00:00:00Z",
		"endDate":   "2026-08-01T00:00:00Z",
	}), http.StatusBadRequest)

	f.want(f.do("POST", fmt.Sprintf("/api/advertisements/%d/click", 999), nil), http.StatusNotFound)
}

func TestClassifiedApprovalFlow(t *testing.T) {
	f := newFixture(t)
	moderator := f.seedAuthor("moderator")

	w := f.do("POST", "/api/classified-ads", map[string]any{
		"title":       "Satılık Bisiklet",
		"description": "Az kullanılmış dağ bisikleti.",
		"category":    "ikinci-el",
		"contactName": "Ali",
	})
	f.want(w, http.StatusCreated)
	ad := decodeAs[models.ClassifiedAd](t, w)
	if ad.Status != models.ClassifiedPending {
		t.Errorf("status: got %q, want pending", ad.Status)
	}
	if ad.Currency != "TRY" {
		t.Errorf("currency: got %q, want TRY", ad.Currency)
	}
	if ad.Images == nil {
		t.Error("images must serialize as an array")
	}

	// Approval needs a moderator id.
	f.want(f.do("POST", fmt.Sprintf("/api/classified-ads/%d/approve", ad.ID), map[string]any{}), http.StatusBadRequest)

	w = f.do("POST", fmt.Sprintf("/api/classified-ads/%d/approve", ad.ID), map[string]any{
		"approvedBy": moderator.ID,
	})
	f.want(w, http.StatusOK)
	approved := decodeAs[models.ClassifiedAd](t, w)
	if approved.Status != models.ClassifiedApproved {
		t.Errorf("status: got %q, want approved", approved.Status)
	}
	if approved.ApprovedBy == nil || *approved.ApprovedBy != moderator.ID {
		t.Error("approvedBy not recorded")
	}
	if approved.ApprovedAt == nil {
		t.Error("approvedAt not recorded")
	}

	w = f.do("POST", fmt.Sprintf("/api/classified-ads/%d/reject", ad.ID), nil)
	f.want(w, http.StatusOK)
	rejected := decodeAs[models.ClassifiedAd](t, w)
	if rejected.Status != models.ClassifiedRejected {
		t.Errorf("status: got %q, want rejected", rejected.Status)
	}

	f.want(f.do("POST", fmt.Sprintf("/api/classified-ads/%d/view", ad.ID), nil), http.StatusNoContent)
	w = f.do("GET", fmt.Sprintf("/api/classified-ads/%d", ad.ID), nil)
	f.want(w, http.StatusOK)
	if got := decodeAs[models.ClassifiedAd](t, w); got.ViewCount != 1 {
		t.Errorf("viewCount: got %d, want 1", got.ViewCount)
	}

	f.want(f.do("POST", "/api/classified-ads", map[string]any{
		"title":       "Eksik İlan",
		"description": "Kategori yok.",
		"contactName": "Ali",
	}), http.StatusBadRequest)
}

func TestClassifiedFilters(t *testing.T) {
	f := newFixture(t)
	for i, premium := range []bool{true, false, false} {
		w := f.do("POST", "/api/classified-ads", map[string]any{
			"title":       fmt.Sprintf("İlan %d", i+1),
			"description": "Açıklama.",
			"category":    "emlak",
			"contactName": "Veli",
			"isPremium":   premium,
		})
		f.want(w, http.StatusCreated)
	}

	w := f.do("GET", "/api/classified-ads?isPremium=true", nil)
	f.want(w, http.StatusOK)
	if items := decodeAs[[]models.ClassifiedAd](t, w); len(items) != 1 {
		t.Errorf("premium count: got %d, want 1", len(items))
	}

	f.want(f.do("GET", "/api/classified-ads?isPremium=maybe", nil), http.StatusBadRequest)

	w = f.do("GET", "/api/classified-ads?category=emlak&status=pending", nil)
	f.want(w, http.StatusOK)
	if items := decodeAs[[]models.ClassifiedAd](t, w); len(items) != 3 {
		t.Errorf("filtered count: got %d, want 3", len(items))
	}
}

func TestMagazineDownloads(t *testing.T) {
	f := newFixture(t)

	w := f.do("POST", "/api/magazine-categories", map[string]any{"name": "Aylık"})
	f.want(w, http.StatusCreated)
	cat := decodeAs[models.MagazineCategory](t, w)

	w = f.do("POST", "/api/digital-magazines", map[string]any{
		"title":       "Şehir Dergisi",
		"issueNumber": 12,
		"categoryId":  cat.ID,
		"isPublished": true,
	})
	f.want(w, http.StatusCreated)
	mag := decodeAs[models.DigitalMagazine](t, w)
	if mag.Slug != "sehir-dergisi" {
		t.Errorf("slug: got %q", mag.Slug)
	}

	f.want(f.do("POST", fmt.Sprintf("/api/digital-magazines/%d/download", mag.ID), nil), http.StatusNoContent)
	w = f.do("GET", fmt.Sprintf("/api/digital-magazines/%d", mag.ID), nil)
	f.want(w, http.StatusOK)
	if got := decodeAs[models.DigitalMagazine](t, w); got.DownloadCount != 1 {
		t.Errorf("downloadCount: got %d, want 1", got.DownloadCount)
	}

	// Duplicate slug and zero issue number are rejected.
	f.want(f.do("POST", "/api/digital-magazines", map[string]any{
		"title":       "Şehir Dergisi",
		"issueNumber": 13,
	}), http.StatusConflict)
	f.want(f.do("POST", "/api/digital-magazines", map[string]any{
		"title": "Sayısız Dergi",
	}), http.StatusBadRequest)

	w = f.do("GET", "/api/digital-magazines?isPublished=true", nil)
	f.want(w, http.StatusOK)
	if items := decodeAs[[]models.DigitalMagazine](t, w); len(items) != 1 {
		t.Errorf("published count: got %d, want 1", len(items))
	}
}

func TestNewspaperPageOrdering(t *testing.T) {
	f := newFixture(t)

	pages := []map[string]any{
		{"title": "Birinci Sayfa", "pageNumber": 1, "issueDate": "2026-08-30T00:00:00Z", "imageUrl": "/pages/old-1.jpg"},
		{"title": "İkinci Sayfa", "pageNumber": 2, "issueDate": "2026-08-31T00:00:00Z", "imageUrl": "/pages/new-2.jpg"},
		{"title": "Birinci Sayfa", "pageNumber": 1, "issueDate": "2026-08-31T00:00:00Z", "imageUrl": "/pages/new-1.jpg"},
	}
	for _, p := range pages {
		f.want(f.do("POST", "/api/newspaper-pages", p), http.StatusCreated)
	}

	w := f.do("GET", "/api/newspaper-pages", nil)
	f.want(w, http.StatusOK)
	got := decodeAs[[]models.NewspaperPage](t, w)
	if len(got) != 3 {
		t.Fatalf("count: got %d, want 3", len(got))
	}
	// Newest issue first, then ascending page number within the issue.
	if got[0].ImageURL != "/pages/new-1.jpg" || got[1].ImageURL != "/pages/new-2.jpg" || got[2].ImageURL != "/pages/old-1.jpg" {
		t.Errorf("order: got %s, %s, %s", got[0].ImageURL, got[1].ImageURL, got[2].ImageURL)
	}

	f.want(f.do("POST", "/api/newspaper-pages", map[string]any{
		"title":      "Sayfasız",
		"pageNumber": 0,
		"issueDate":  "2026-08-31T00:00:00Z",
		"imageUrl":   "/pages/x.jpg",
	}), http.StatusBadRequest)
	f.want(f.do("POST", "/api/newspaper-pages", map[string]any{
		"title":      "Tarihsiz",
		"pageNumber": 1,
		"imageUrl":   "/pages/x.jpg",
	}), http.StatusBadRequest)
}
