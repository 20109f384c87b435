package handlers

import (
	"net/http"

	"gazete/internal/models"
	"gazete/internal/slug"
)

// cityRequest carries the writable city fields.
type cityRequest struct {
	Name string  `json:"name"`
	Slug string  `json:"slug"`
	Code *string `json:"code"`
}

func (req *cityRequest) normalize() string {
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name)
	}
	return validateName(req.Name)
}

// CitiesList returns all cities ordered by name.
func (a *API) CitiesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.stores.Cities.List()
	if err != nil {
		serverError(w, "list cities", err)
		return
	}
	if items == nil {
		items = []models.City{}
	}
	writeJSON(w, http.StatusOK, items)
}

// CityGet returns a single city.
func (a *API) CityGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.stores.Cities.FindByID(id)
	if err != nil {
		serverError(w, "find city", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// CityCreate inserts a city.
func (a *API) CityCreate(w http.ResponseWriter, r *http.Request) {
	var req cityRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	created, err := a.stores.Cities.Create(&models.City{Name: req.Name, Slug: req.Slug, Code: req.Code})
	if err != nil {
		storeError(w, "create city", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// CityUpdate replaces the writable fields of a city.
func (a *API) CityUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var req cityRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	updated, err := a.stores.Cities.Update(&models.City{ID: id, Name: req.Name, Slug: req.Slug, Code: req.Code})
	if err != nil {
		storeError(w, "update city", err)
		return
	}
	if updated == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// CityDelete removes a city.
func (a *API) CityDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	deleted, err := a.stores.Cities.Delete(id)
	if err != nil {
		serverError(w, "delete city", err)
		return
	}
	if !deleted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// sourceRequest carries the writable source fields.
type sourceRequest struct {
	Name         string            `json:"name"`
	Slug         string            `json:"slug"`
	Type         models.SourceType `json:"type"`
	IsActive     *bool             `json:"isActive"`
	ContactEmail *string           `json:"contactEmail"`
	ContactPhone *string           `json:"contactPhone"`
	Website      *string           `json:"website"`
}

func (req *sourceRequest) normalize() string {
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name)
	}
	if msg := validateName(req.Name); msg != "" {
		return msg
	}
	switch req.Type {
	case models.SourceNewspaper, models.SourceMagazine, models.SourceOnline,
		models.SourceTV, models.SourceRadio, models.SourceAgency, models.SourceSocial:
	default:
		return "invalid source type"
	}
	if req.ContactEmail != nil && *req.ContactEmail != "" {
		if msg := validateEmail(*req.ContactEmail); msg != "" {
			return msg
		}
	}
	return ""
}

func (req *sourceRequest) toModel() *models.Source {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.Source{
		Name:         req.Name,
		Slug:         req.Slug,
		Type:         req.Type,
		IsActive:     active,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Website:      req.Website,
	}
}

// SourcesList returns all news sources ordered by name.
func (a *API) SourcesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.stores.Sources.List()
	if err != nil {
		serverError(w, "list sources", err)
		return
	}
	if items == nil {
		items = []models.Source{}
	}
	writeJSON(w, http.StatusOK, items)
}

// SourceGet returns a single source.
func (a *API) SourceGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.stores.Sources.FindByID(id)
	if err != nil {
		serverError(w, "find source", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// SourceCreate inserts a news source.
func (a *API) SourceCreate(w http.ResponseWriter, r *http.Request) {
	var req sourceRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	created, err := a.stores.Sources.Create(req.toModel())
	if err != nil {
		storeError(w, "create source", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// SourceUpdate replaces the writable fields of a source.
func (a *API) SourceUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var req sourceRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	src := req.toModel()
	src.ID = id
	updated, err := a.stores.Sources.Update(src)
	if err != nil {
		storeError(w, "update source", err)
		return
	}
	if updated == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// SourceDelete removes a source.
func (a *API) SourceDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	deleted, err := a.stores.Sources.Delete(id)
	if err != nil {
		serverError(w, "delete source", err)
		return
	}
	if !deleted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
