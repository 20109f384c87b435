package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"gazete/internal/models"
	"gazete/internal/slug"
)

// newsRequest carries the writable news fields. Server-generated fields
// are rejected by the decoder.
type newsRequest struct {
	Title           string               `json:"title"`
	Slug            string               `json:"slug"`
	Summary         *string              `json:"summary"`
	Content         string               `json:"content"`
	FeaturedImage   *string              `json:"featuredImage"`
	FeaturedVideo   *string              `json:"featuredVideo"`
	Status          models.ContentStatus `json:"status"`
	AuthorID        int64                `json:"authorId"`
	EditorID        *int64               `json:"editorId"`
	CategoryID      int64                `json:"categoryId"`
	CityID          *int64               `json:"cityId"`
	SourceID        *int64               `json:"sourceId"`
	PublishedAt     *time.Time           `json:"publishedAt"`
	ScheduledAt     *time.Time           `json:"scheduledAt"`
	MetaTitle       *string              `json:"metaTitle"`
	MetaDescription *string              `json:"metaDescription"`
	Keywords        *string              `json:"keywords"`
}

// normalize fills defaults and returns the first validation error.
func (req *newsRequest) normalize() string {
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

func (req *newsRequest) toModel() *models.News {
	return &models.News{
		Title:           req.Title,
		Slug:            req.Slug,
		Summary:         req.Summary,
		Content:         req.Content,
		FeaturedImage:   req.FeaturedImage,
		FeaturedVideo:   req.FeaturedVideo,
		Status:          req.Status,
		AuthorID:        req.AuthorID,
		EditorID:        req.EditorID,
		CategoryID:      req.CategoryID,
		CityID:          req.CityID,
		SourceID:        req.SourceID,
		PublishedAt:     req.PublishedAt,
		ScheduledAt:     req.ScheduledAt,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
	}
}

// newsFilters builds list filters from the query string.
func newsFilters(r *http.Request) (models.NewsFilters, string) {
	var f models.NewsFilters
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

// NewsList returns news enriched with author and category, narrowed by
// the optional status/categoryId/authorId query parameters.
func (a *API) NewsList(w http.ResponseWriter, r *http.Request) {
	filters, msg := newsFilters(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	items, err := a.stores.News.List(filters)
	if err != nil {
		serverError(w, "list news", err)
		return
	}
	if items == nil {
		items = []models.NewsWithDetails{}
	}
	writeJSON(w, http.StatusOK, items)
}

// NewsGet returns a single enriched news item.
func (a *API) NewsGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.stores.News.FindByID(id)
	if err != nil {
		serverError(w, "find news", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// NewsGetBySlug returns a single enriched news item by slug.
func (a *API) NewsGetBySlug(w http.ResponseWriter, r *http.Request) {
	item, err := a.stores.News.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		serverError(w, "find news by slug", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// NewsCreate inserts a news item.
func (a *API) NewsCreate(w http.ResponseWriter, r *http.Request) {
	var req newsRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	created, err := a.stores.News.Create(req.toModel())
	if err != nil {
		storeError(w, "create news", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// NewsUpdate replaces the writable fields of a news item. The base row
// lookup means items whose author or category was deleted can still be
// repaired here even though the enriched reads omit them.
func (a *API) NewsUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	current, err := a.stores.News.FindRowByID(id)
	if err != nil {
		serverError(w, "find news", err)
		return
	}
	if current == nil {
		notFound(w)
		return
	}

	var req newsRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	n := req.toModel()
	n.ID = id
	if n.PublishedAt == nil {
		n.PublishedAt = current.PublishedAt
	}
	updated, err := a.stores.News.Update(n)
	if err != nil {
		storeError(w, "update news", err)
		return
	}
	if updated == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// NewsDelete removes a news item.
func (a *API) NewsDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	deleted, err := a.stores.News.Delete(id)
	if err != nil {
		serverError(w, "delete news", err)
		return
	}
	if !deleted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// NewsView records one view of a news item.
func (a *API) NewsView(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	counted, err := a.stores.News.IncrementViews(id)
	if err != nil {
		serverError(w, "increment news views", err)
		return
	}
	if !counted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
