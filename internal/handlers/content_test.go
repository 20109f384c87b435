package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"gazete/internal/models"
)

func TestArticleCRUD(t *testing.T) {
	f := newFixture(t)
	author := f.seedAuthor("kose-yazari")
	cat := f.seedCategory("Köşe")

	w := f.do("POST", "/api/articles", map[string]any{
		"title":      "Şehir ve Hafıza",
		"content":    "Şehirler hatırladıklarıyla yaşar.",
		"status":     "published",
		"authorId":   author.ID,
		"categoryId": cat.ID,
	})
	f.want(w, http.StatusCreated)
	created := decodeAs[models.Article](t, w)
	if created.Slug != "sehir-ve-hafiza" {
		t.Errorf("slug: got %q", created.Slug)
	}
	if created.PublishedAt == nil {
		t.Error("publishedAt not set on published create")
	}

	w = f.do("GET", "/api/articles/slug/"+created.Slug, nil)
	f.want(w, http.StatusOK)
	got := decodeAs[models.ArticleWithDetails](t, w)
	if got.Author.ID != author.ID {
		t.Errorf("author id: got %d, want %d", got.Author.ID, author.ID)
	}

	w = f.do("GET", "/api/articles?status=draft", nil)
	f.want(w, http.StatusOK)
	if items := decodeAs[[]models.ArticleWithDetails](t, w); len(items) != 0 {
		t.Errorf("draft list: got %d items, want 0", len(items))
	}

	f.want(f.do("DELETE", fmt.Sprintf("/api/articles/%d", created.ID), nil), http.StatusNoContent)
	f.want(f.do("GET", fmt.Sprintf("/api/articles/%d", created.ID), nil), http.StatusNotFound)
}

func TestCategoryTree(t *testing.T) {
	f := newFixture(t)
	root := f.seedCategory("Spor")

	w := f.do("POST", "/api/categories", map[string]any{
		"name":     "Futbol",
		"parentId": root.ID,
	})
	f.want(w, http.StatusCreated)
	child := decodeAs[models.Category](t, w)

	// A third level is rejected.
	w = f.do("POST", "/api/categories", map[string]any{
		"name":     "Süper Lig",
		"parentId": child.ID,
	})
	f.want(w, http.StatusBadRequest)

	// Unknown parent is rejected.
	w = f.do("POST", "/api/categories", map[string]any{
		"name":     "Basketbol",
		"parentId": 999,
	})
	f.want(w, http.StatusBadRequest)

	// Self-parenting is rejected on update.
	w = f.do("PUT", fmt.Sprintf("/api/categories/%d", root.ID), map[string]any{
		"name":     "Spor",
		"parentId": root.ID,
	})
	f.want(w, http.StatusBadRequest)

	author := f.seedAuthor("spor-servisi")
	w = f.do("POST", "/api/news", map[string]any{
		"title":      "Derbi Berabere Bitti",
		"content":    "Gol sesi çıkmadı.",
		"authorId":   author.ID,
		"categoryId": child.ID,
	})
	f.want(w, http.StatusCreated)

	w = f.do("GET", "/api/categories", nil)
	f.want(w, http.StatusOK)
	roots := decodeAs[[]models.Category](t, w)
	if len(roots) != 1 {
		t.Fatalf("roots: got %d, want 1", len(roots))
	}
	if len(roots[0].Children) != 1 {
		t.Fatalf("children: got %d, want 1", len(roots[0].Children))
	}
	if got := roots[0].Children[0].NewsCount; got != 1 {
		t.Errorf("child newsCount: got %d, want 1", got)
	}
	if roots[0].NewsCount != 0 {
		t.Errorf("root newsCount: got %d, want 0", roots[0].NewsCount)
	}
}

func TestCategoryLookupBySlug(t *testing.T) {
	f := newFixture(t)
	cat := f.seedCategory("Dış Haberler")

	w := f.do("GET", "/api/categories/slug/"+cat.Slug, nil)
	f.want(w, http.StatusOK)
	got := decodeAs[models.Category](t, w)
	if got.ID != cat.ID {
		t.Errorf("id: got %d, want %d", got.ID, cat.ID)
	}
	if got.Name != "Dış Haberler" {
		t.Errorf("name: got %q", got.Name)
	}

	f.want(f.do("GET", "/api/categories/slug/yok-boyle-bir-kategori", nil), http.StatusNotFound)
}

func TestCategorySlugConflict(t *testing.T) {
	f := newFixture(t)
	f.seedCategory("Gündem")
	w := f.do("POST", "/api/categories", map[string]any{"name": "Gündem"})
	f.want(w, http.StatusConflict)
}

func TestCommentModeration(t *testing.T) {
	f := newFixture(t)
	author := f.seedAuthor("muhabir2")
	cat := f.seedCategory("Gündem")
	w := f.do("POST", "/api/news", map[string]any{
		"title":      "Yeni Hastane Açıldı",
		"content":    "Hastane hizmete girdi.",
		"authorId":   author.ID,
		"categoryId": cat.ID,
	})
	f.want(w, http.StatusCreated)
	news := decodeAs[models.News](t, w)

	w = f.do("POST", "/api/comments", map[string]any{
		"newsId":      news.ID,
		"authorName":  "Mehmet",
		"authorEmail": "mehmet@example.com",
		"content":     "Hayırlı olsun.",
	})
	f.want(w, http.StatusCreated)
	comment := decodeAs[models.Comment](t, w)
	if comment.Status != models.CommentPending {
		t.Errorf("status: got %q, want pending", comment.Status)
	}

	// newsId is required on create but fixed afterwards.
	w = f.do("POST", "/api/comments", map[string]any{
		"authorName":  "Mehmet",
		"authorEmail": "mehmet@example.com",
		"content":     "Tekrar.",
	})
	f.want(w, http.StatusBadRequest)

	w = f.do("PUT", fmt.Sprintf("/api/comments/%d", comment.ID), map[string]any{
		"authorName":  "Mehmet",
		"authorEmail": "mehmet@example.com",
		"content":     "Hayırlı olsun.",
		"status":      "approved",
	})
	f.want(w, http.StatusOK)
	moderated := decodeAs[models.Comment](t, w)
	if moderated.Status != models.CommentApproved {
		t.Errorf("status: got %q, want approved", moderated.Status)
	}
	if moderated.NewsID != news.ID {
		t.Errorf("newsId changed on update: got %d, want %d", moderated.NewsID, news.ID)
	}

	w = f.do("GET", fmt.Sprintf("/api/comments?status=pending&newsId=%d", news.ID), nil)
	f.want(w, http.StatusOK)
	if items := decodeAs[[]models.Comment](t, w); len(items) != 0 {
		t.Errorf("pending list: got %d items, want 0", len(items))
	}
}
