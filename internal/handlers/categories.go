package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gazete/internal/models"
	"gazete/internal/slug"
)

// categoryRequest carries the writable category fields.
type categoryRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	ParentID    *int64  `json:"parentId"`
}

func (req *categoryRequest) normalize() string {
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name)
	}
	if msg := validateName(req.Name); msg != "" {
		return msg
	}
	if req.ParentID != nil && *req.ParentID < 1 {
		return "invalid parentId"
	}
	return ""
}

func (req *categoryRequest) toModel() *models.Category {
	return &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ParentID:    req.ParentID,
	}
}

// CategoriesList returns the category tree with per-category news counts.
// Roots carry their children; only one level of nesting exists.
func (a *API) CategoriesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.stores.Categories.List()
	if err != nil {
		serverError(w, "list categories", err)
		return
	}
	if items == nil {
		items = []models.Category{}
	}
	writeJSON(w, http.StatusOK, items)
}

// CategoryGet returns a single category row.
func (a *API) CategoryGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.stores.Categories.FindByID(id)
	if err != nil {
		serverError(w, "find category", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// CategoryGetBySlug returns a single category row by slug.
func (a *API) CategoryGetBySlug(w http.ResponseWriter, r *http.Request) {
	item, err := a.stores.Categories.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		serverError(w, "find category by slug", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// CategoryCreate inserts a category. A nested category must reference an
// existing root; deeper nesting is rejected.
func (a *API) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if req.ParentID != nil {
		parent, err := a.stores.Categories.FindByID(*req.ParentID)
		if err != nil {
			serverError(w, "find parent category", err)
			return
		}
		if parent == nil {
			writeError(w, http.StatusBadRequest, "parent category does not exist")
			return
		}
		if parent.ParentID != nil {
			writeError(w, http.StatusBadRequest, "categories nest only one level deep")
			return
		}
	}
	created, err := a.stores.Categories.Create(req.toModel())
	if err != nil {
		storeError(w, "create category", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// CategoryUpdate replaces the writable fields of a category.
func (a *API) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var req categoryRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if req.ParentID != nil && *req.ParentID == id {
		writeError(w, http.StatusBadRequest, "category cannot be its own parent")
		return
	}

	c := req.toModel()
	c.ID = id
	updated, err := a.stores.Categories.Update(c)
	if err != nil {
		storeError(w, "update category", err)
		return
	}
	if updated == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// CategoryDelete removes a category. News in the category keeps its
// category id and drops out of enriched reads until reassigned.
func (a *API) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	deleted, err := a.stores.Categories.Delete(id)
	if err != nil {
		serverError(w, "delete category", err)
		return
	}
	if !deleted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
