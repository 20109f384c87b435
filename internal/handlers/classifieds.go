package handlers

import (
	"net/http"
	"strings"

	"gazete/internal/models"
)

// classifiedRequest carries the writable classified ad fields. Approval
// fields only move through the approve/reject endpoints.
type classifiedRequest struct {
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	Category     string                  `json:"category"`
	Subcategory  *string                 `json:"subcategory"`
	Price        *float64                `json:"price"`
	Currency     string                  `json:"currency"`
	Location     *string                 `json:"location"`
	ContactName  string                  `json:"contactName"`
	ContactPhone *string                 `json:"contactPhone"`
	ContactEmail *string                 `json:"contactEmail"`
	Images       []string                `json:"images"`
	Status       models.ClassifiedStatus `json:"status"`
	IsPremium    bool                    `json:"isPremium"`
	IsUrgent     bool                    `json:"isUrgent"`
}

func validClassifiedStatus(s models.ClassifiedStatus) bool {
	switch s {
	case models.ClassifiedPending, models.ClassifiedApproved,
		models.ClassifiedRejected, models.ClassifiedExpired:
		return true
	}
	return false
}

func (req *classifiedRequest) normalize() string {
	if req.Status == "" {
		req.Status = models.ClassifiedPending
	}
	if !validClassifiedStatus(req.Status) {
		return "invalid status"
	}
	if msg := validateName(req.Title); msg != "" {
		return "title is required"
	}
	if strings.TrimSpace(req.Description) == "" {
		return "description is required"
	}
	if strings.TrimSpace(req.Category) == "" {
		return "category is required"
	}
	if strings.TrimSpace(req.ContactName) == "" {
		return "contactName is required"
	}
	if req.ContactEmail != nil && *req.ContactEmail != "" {
		if msg := validateEmail(*req.ContactEmail); msg != "" {
			return msg
		}
	}
	if req.Price != nil && *req.Price < 0 {
		return "price cannot be negative"
	}
	if req.Currency == "" {
		req.Currency = "TRY"
	}
	return ""
}

func (req *classifiedRequest) toModel() *models.ClassifiedAd {
	return &models.ClassifiedAd{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Subcategory:  req.Subcategory,
		Price:        req.Price,
		Currency:     req.Currency,
		Location:     req.Location,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Images:       req.Images,
		Status:       req.Status,
		IsPremium:    req.IsPremium,
		IsUrgent:     req.IsUrgent,
	}
}

func classifiedFilters(r *http.Request) (models.ClassifiedFilters, string) {
	var f models.ClassifiedFilters
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := models.ClassifiedStatus(raw)
		if !validClassifiedStatus(status) {
			return f, "invalid status"
		}
		f.Status = &status
	}
	if raw := r.URL.Query().Get("category"); raw != "" {
		f.Category = &raw
	}
	isPremium, err := queryBool(r, "isPremium")
	if err != nil {
		return f, err.Error()
	}
	f.IsPremium = isPremium
	return f, ""
}

// ClassifiedsList returns classified ads newest first, narrowed by the
// optional status/category/isPremium query parameters.
func (a *API) ClassifiedsList(w http.ResponseWriter, r *http.Request) {
	filters, msg := classifiedFilters(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	items, err := a.stores.Classifieds.List(filters)
	if err != nil {
		serverError(w, "list classified ads", err)
		return
	}
	if items == nil {
		items = []models.ClassifiedAd{}
	}
	writeJSON(w, http.StatusOK, items)
}

// ClassifiedGet returns a single classified ad.
func (a *API) ClassifiedGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.stores.Classifieds.FindByID(id)
	if err != nil {
		serverError(w, "find classified ad", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// ClassifiedCreate inserts a classified ad, pending by default.
func (a *API) ClassifiedCreate(w http.ResponseWriter, r *http.Request) {
	var req classifiedRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	created, err := a.stores.Classifieds.Create(req.toModel())
	if err != nil {
		storeError(w, "create classified ad", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ClassifiedUpdate replaces the writable fields of a classified ad.
func (a *API) ClassifiedUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var req classifiedRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	c := req.toModel()
	c.ID = id
	updated, err := a.stores.Classifieds.Update(c)
	if err != nil {
		storeError(w, "update classified ad", err)
		return
	}
	if updated == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ClassifiedDelete removes a classified ad.
func (a *API) ClassifiedDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	deleted, err := a.stores.Classifieds.Delete(id)
	if err != nil {
		serverError(w, "delete classified ad", err)
		return
	}
	if !deleted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// approveRequest names the moderator approving a classified ad.
type approveRequest struct {
	ApprovedBy int64 `json:"approvedBy"`
}

// ClassifiedApprove marks a classified ad approved, recording the
// moderator and timestamp together.
func (a *API) ClassifiedApprove(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var req approveRequest
	if !decode(w, r, &req) {
		return
	}
	if req.ApprovedBy < 1 {
		writeError(w, http.StatusBadRequest, "approvedBy is required")
		return
	}
	approved, err := a.stores.Classifieds.Approve(id, req.ApprovedBy)
	if err != nil {
		serverError(w, "approve classified ad", err)
		return
	}
	if approved == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, approved)
}

// ClassifiedReject marks a classified ad rejected. Earlier approval
// fields stay as history.
func (a *API) ClassifiedReject(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	rejected, err := a.stores.Classifieds.Reject(id)
	if err != nil {
		serverError(w, "reject classified ad", err)
		return
	}
	if rejected == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, rejected)
}

// ClassifiedView records one view of a classified ad.
func (a *API) ClassifiedView(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	counted, err := a.stores.Classifieds.IncrementViews(id)
	if err != nil {
		serverError(w, "increment classified views", err)
		return
	}
	if !counted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
