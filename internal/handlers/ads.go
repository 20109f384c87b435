package handlers

import (
	"net/http"
	"time"

	"gazete/internal/models"
)

// adRequest carries the writable advertisement fields. Counters only
// move through the click/impression endpoints.
type adRequest struct {
	Title     string            `json:"title"`
	ImageURL  *string           `json:"imageUrl"`
	LinkURL   *string           `json:"linkUrl"`
	Position  models.AdPosition `json:"position"`
	Size      string            `json:"size"`
	IsActive  *bool             `json:"isActive"`
	StartDate *time.Time        `json:"startDate"`
	EndDate   *time.Time        `json:"endDate"`
	Priority  int               `json:"priority"`
	CreatedBy int64             `json:"createdBy"`
}

func (req *adRequest) normalize() string {
	if msg := validateName(req.Title); msg != "" {
		return "title is required"
	}
	switch req.Position {
	case models.AdHeader, models.AdSidebar, models.AdFooter, models.AdContent:
	default:
		return "invalid position"
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return "endDate is before startDate"
	}
	return ""
}

func (req *adRequest) toModel() *models.Advertisement {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.Advertisement{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		Position:  req.Position,
		Size:      req.Size,
		IsActive:  active,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Priority:  req.Priority,
		CreatedBy: req.CreatedBy,
	}
}

func adFilters(r *http.Request) (models.AdFilters, string) {
	var f models.AdFilters
	isActive, err := queryBool(r, "isActive")
	if err != nil {
		return f, err.Error()
	}
	f.IsActive = isActive
	if raw := r.URL.Query().Get("position"); raw != "" {
		position := models.AdPosition(raw)
		switch position {
		case models.AdHeader, models.AdSidebar, models.AdFooter, models.AdContent:
		default:
			return f, "invalid position"
		}
		f.Position = &position
	}
	return f, ""
}

// AdsList returns advertisements by priority, narrowed by the optional
// isActive/position query parameters.
func (a *API) AdsList(w http.ResponseWriter, r *http.Request) {
	filters, msg := adFilters(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	items, err := a.stores.Ads.List(filters)
	if err != nil {
		serverError(w, "list advertisements", err)
		return
	}
	if items == nil {
		items = []models.Advertisement{}
	}
	writeJSON(w, http.StatusOK, items)
}

// AdGet returns a single advertisement.
func (a *API) AdGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.stores.Ads.FindByID(id)
	if err != nil {
		serverError(w, "find advertisement", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// AdCreate inserts an advertisement.
func (a *API) AdCreate(w http.ResponseWriter, r *http.Request) {
	var req adRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	created, err := a.stores.Ads.Create(req.toModel())
	if err != nil {
		storeError(w, "create advertisement", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// AdUpdate replaces the writable fields of an advertisement.
func (a *API) AdUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var req adRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	ad := req.toModel()
	ad.ID = id
	updated, err := a.stores.Ads.Update(ad)
	if err != nil {
		storeError(w, "update advertisement", err)
		return
	}
	if updated == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// AdDelete removes an advertisement.
func (a *API) AdDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	deleted, err := a.stores.Ads.Delete(id)
	if err != nil {
		serverError(w, "delete advertisement", err)
		return
	}
	if !deleted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdClick records one click on an advertisement.
func (a *API) AdClick(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	counted, err := a.stores.Ads.IncrementClicks(id)
	if err != nil {
		serverError(w, "increment ad clicks", err)
		return
	}
	if !counted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdImpression records one impression of an advertisement.
func (a *API) AdImpression(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	counted, err := a.stores.Ads.IncrementImpressions(id)
	if err != nil {
		serverError(w, "increment ad impressions", err)
		return
	}
	if !counted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
