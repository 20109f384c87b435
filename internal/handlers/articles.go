package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"gazete/internal/models"
	"gazete/internal/slug"
)

// articleRequest carries the writable article fields.
type articleRequest struct {
	Title           string               `json:"title"`
	Slug            string               `json:"slug"`
	Summary         *string              `json:"summary"`
	Content         string               `json:"content"`
	FeaturedImage   *string              `json:"featuredImage"`
	Status          models.ContentStatus `json:"status"`
	AuthorID        int64                `json:"authorId"`
	EditorID        *int64               `json:"editorId"`
	CategoryID      int64                `json:"categoryId"`
	PublishedAt     *time.Time           `json:"publishedAt"`
	ScheduledAt     *time.Time           `json:"scheduledAt"`
	MetaTitle       *string              `json:"metaTitle"`
	MetaDescription *string              `json:"metaDescription"`
	Keywords        *string              `json:"keywords"`
}

func (req *articleRequest) normalize() string {
	if req.Status == "" {
		req.Status = models.StatusDraft
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Title)
	}
	if msg := validateContent(req.Title, req.Slug, req.Content); msg != "" {
		return msg
	}
	if msg := validateStatus(req.Status); msg != "" {
		return msg
	}
	if msg := validateMetadata(req.Summary, req.MetaTitle, req.MetaDescription, req.Keywords); msg != "" {
		return msg
	}
	if req.AuthorID < 1 {
		return "authorId is required"
	}
	if req.CategoryID < 1 {
		return "categoryId is required"
	}
	return ""
}

func (req *articleRequest) toModel() *models.Article {
	return &models.Article{
		Title:           req.Title,
		Slug:            req.Slug,
		Summary:         req.Summary,
		Content:         req.Content,
		FeaturedImage:   req.FeaturedImage,
		Status:          req.Status,
		AuthorID:        req.AuthorID,
		EditorID:        req.EditorID,
		CategoryID:      req.CategoryID,
		PublishedAt:     req.PublishedAt,
		ScheduledAt:     req.ScheduledAt,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
	}
}

func articleFilters(r *http.Request) (models.ArticleFilters, string) {
	var f models.ArticleFilters
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := models.ContentStatus(raw)
		if msg := validateStatus(status); msg != "" {
			return f, msg
		}
		f.Status = &status
	}
	categoryID, err := queryInt64(r, "categoryId")
	if err != nil {
		return f, err.Error()
	}
	f.CategoryID = categoryID
	authorID, err := queryInt64(r, "authorId")
	if err != nil {
		return f, err.Error()
	}
	f.AuthorID = authorID
	return f, ""
}

// ArticlesList returns articles enriched with author and category.
func (a *API) ArticlesList(w http.ResponseWriter, r *http.Request) {
	filters, msg := articleFilters(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	items, err := a.stores.Articles.List(filters)
	if err != nil {
		serverError(w, "list articles", err)
		return
	}
	if items == nil {
		items = []models.ArticleWithDetails{}
	}
	writeJSON(w, http.StatusOK, items)
}

// ArticleGet returns a single enriched article.
func (a *API) ArticleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.stores.Articles.FindByID(id)
	if err != nil {
		serverError(w, "find article", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// ArticleGetBySlug returns a single enriched article by slug.
func (a *API) ArticleGetBySlug(w http.ResponseWriter, r *http.Request) {
	item, err := a.stores.Articles.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		serverError(w, "find article by slug", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// ArticleCreate inserts an article.
func (a *API) ArticleCreate(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	created, err := a.stores.Articles.Create(req.toModel())
	if err != nil {
		storeError(w, "create article", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ArticleUpdate replaces the writable fields of an article.
func (a *API) ArticleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	current, err := a.stores.Articles.FindRowByID(id)
	if err != nil {
		serverError(w, "find article", err)
		return
	}
	if current == nil {
		notFound(w)
		return
	}

	var req articleRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	art := req.toModel()
	art.ID = id
	if art.PublishedAt == nil {
		art.PublishedAt = current.PublishedAt
	}
	updated, err := a.stores.Articles.Update(art)
	if err != nil {
		storeError(w, "update article", err)
		return
	}
	if updated == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ArticleDelete removes an article.
func (a *API) ArticleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	deleted, err := a.stores.Articles.Delete(id)
	if err != nil {
		serverError(w, "delete article", err)
		return
	}
	if !deleted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
