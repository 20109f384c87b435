package handlers

import (
	"net/http"
	"time"

	"gazete/internal/models"
	"gazete/internal/slug"
)

// magazineRequest carries the writable digital magazine fields.
type magazineRequest struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	IssueNumber int        `json:"issueNumber"`
	CoverImage  *string    `json:"coverImage"`
	FileURL     *string    `json:"fileUrl"`
	CategoryID  *int64     `json:"categoryId"`
	IsPublished bool       `json:"isPublished"`
	IsFeatured  bool       `json:"isFeatured"`
	PublishedAt *time.Time `json:"publishedAt"`
}

func (req *magazineRequest) normalize() string {
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Title)
	}
	if msg := validateName(req.Title); msg != "" {
		return "title is required"
	}
	if req.IssueNumber < 1 {
		return "issueNumber is required"
	}
	if req.CategoryID != nil && *req.CategoryID < 1 {
		return "invalid categoryId"
	}
	return ""
}

func (req *magazineRequest) toModel() *models.DigitalMagazine {
	return &models.DigitalMagazine{
		Title:       req.Title,
		Slug:        req.Slug,
		IssueNumber: req.IssueNumber,
		CoverImage:  req.CoverImage,
		FileURL:     req.FileURL,
		CategoryID:  req.CategoryID,
		IsPublished: req.IsPublished,
		IsFeatured:  req.IsFeatured,
		PublishedAt: req.PublishedAt,
	}
}

func magazineFilters(r *http.Request) (models.MagazineFilters, string) {
	var f models.MagazineFilters
	isPublished, err := queryBool(r, "isPublished")
	if err != nil {
		return f, err.Error()
	}
	f.IsPublished = isPublished
	categoryID, err := queryInt64(r, "categoryId")
	if err != nil {
		return f, err.Error()
	}
	f.CategoryID = categoryID
	isFeatured, err := queryBool(r, "isFeatured")
	if err != nil {
		return f, err.Error()
	}
	f.IsFeatured = isFeatured
	return f, ""
}

// MagazinesList returns magazines newest first, narrowed by the optional
// isPublished/categoryId/isFeatured query parameters.
func (a *API) MagazinesList(w http.ResponseWriter, r *http.Request) {
	filters, msg := magazineFilters(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	items, err := a.stores.Magazines.List(filters)
	if err != nil {
		serverError(w, "list magazines", err)
		return
	}
	if items == nil {
		items = []models.DigitalMagazine{}
	}
	writeJSON(w, http.StatusOK, items)
}

// MagazineGet returns a single magazine issue.
func (a *API) MagazineGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.stores.Magazines.FindByID(id)
	if err != nil {
		serverError(w, "find magazine", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// MagazineCreate inserts a magazine issue.
func (a *API) MagazineCreate(w http.ResponseWriter, r *http.Request) {
	var req magazineRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	created, err := a.stores.Magazines.Create(req.toModel())
	if err != nil {
		storeError(w, "create magazine", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// MagazineUpdate replaces the writable fields of a magazine issue.
func (a *API) MagazineUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var req magazineRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	m := req.toModel()
	m.ID = id
	updated, err := a.stores.Magazines.Update(m)
	if err != nil {
		storeError(w, "update magazine", err)
		return
	}
	if updated == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// MagazineDelete removes a magazine issue.
func (a *API) MagazineDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	deleted, err := a.stores.Magazines.Delete(id)
	if err != nil {
		serverError(w, "delete magazine", err)
		return
	}
	if !deleted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MagazineDownload records one download of a magazine issue.
func (a *API) MagazineDownload(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	counted, err := a.stores.Magazines.IncrementDownloads(id)
	if err != nil {
		serverError(w, "increment magazine downloads", err)
		return
	}
	if !counted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// magazineCategoryRequest carries the writable magazine category fields.
type magazineCategoryRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	ParentID    *int64  `json:"parentId"`
}

func (req *magazineCategoryRequest) normalize() string {
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

// MagazineCategoriesList returns magazine categories ordered by name.
func (a *API) MagazineCategoriesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.stores.MagazineCategories.List()
	if err != nil {
		serverError(w, "list magazine categories", err)
		return
	}
	if items == nil {
		items = []models.MagazineCategory{}
	}
	writeJSON(w, http.StatusOK, items)
}

// MagazineCategoryGet returns a single magazine category.
func (a *API) MagazineCategoryGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.stores.MagazineCategories.FindByID(id)
	if err != nil {
		serverError(w, "find magazine category", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// MagazineCategoryCreate inserts a magazine category.
func (a *API) MagazineCategoryCreate(w http.ResponseWriter, r *http.Request) {
	var req magazineCategoryRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	created, err := a.stores.MagazineCategories.Create(&models.MagazineCategory{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		storeError(w, "create magazine category", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// MagazineCategoryUpdate replaces the writable fields of a magazine
// category.
func (a *API) MagazineCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var req magazineCategoryRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	updated, err := a.stores.MagazineCategories.Update(&models.MagazineCategory{
		ID:          id,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		storeError(w, "update magazine category", err)
		return
	}
	if updated == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// MagazineCategoryDelete removes a magazine category.
func (a *API) MagazineCategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	deleted, err := a.stores.MagazineCategories.Delete(id)
	if err != nil {
		serverError(w, "delete magazine category", err)
		return
	}
	if !deleted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// newspaperPageRequest carries the writable newspaper page fields.
type newspaperPageRequest struct {
	Title       string    `json:"title"`
	PageNumber  int       `json:"pageNumber"`
	IssueDate   time.Time `json:"issueDate"`
	ImageURL    string    `json:"imageUrl"`
	IsPublished bool      `json:"isPublished"`
}

func (req *newspaperPageRequest) normalize() string {
	if msg := validateName(req.Title); msg != "" {
		return "title is required"
	}
	if req.PageNumber < 1 {
		return "pageNumber is required"
	}
	if req.IssueDate.IsZero() {
		return "issueDate is required"
	}
	if req.ImageURL == "" {
		return "imageUrl is required"
	}
	return ""
}

// NewspaperPagesList returns newspaper pages, latest issue first, in
// page order within an issue.
func (a *API) NewspaperPagesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.stores.NewspaperPages.List()
	if err != nil {
		serverError(w, "list newspaper pages", err)
		return
	}
	if items == nil {
		items = []models.NewspaperPage{}
	}
	writeJSON(w, http.StatusOK, items)
}

// NewspaperPageGet returns a single newspaper page.
func (a *API) NewspaperPageGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.stores.NewspaperPages.FindByID(id)
	if err != nil {
		serverError(w, "find newspaper page", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// NewspaperPageCreate inserts a newspaper page.
func (a *API) NewspaperPageCreate(w http.ResponseWriter, r *http.Request) {
	var req newspaperPageRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	created, err := a.stores.NewspaperPages.Create(&models.NewspaperPage{
		Title:       req.Title,
		PageNumber:  req.PageNumber,
		IssueDate:   req.IssueDate,
		ImageURL:    req.ImageURL,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		storeError(w, "create newspaper page", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// NewspaperPageUpdate replaces the writable fields of a newspaper page.
func (a *API) NewspaperPageUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var req newspaperPageRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	updated, err := a.stores.NewspaperPages.Update(&models.NewspaperPage{
		ID:          id,
		Title:       req.Title,
		PageNumber:  req.PageNumber,
		IssueDate:   req.IssueDate,
		ImageURL:    req.ImageURL,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		storeError(w, "update newspaper page", err)
		return
	}
	if updated == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// NewspaperPageDelete removes a newspaper page.
func (a *API) NewspaperPageDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	deleted, err := a.stores.NewspaperPages.Delete(id)
	if err != nil {
		serverError(w, "delete newspaper page", err)
		return
	}
	if !deleted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
