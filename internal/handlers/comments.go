package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"gazete/internal/models"
)

// commentRequest carries the writable comment fields.
type commentRequest struct {
	NewsID      int64                `json:"newsId"`
	AuthorName  string               `json:"authorName"`
	AuthorEmail string               `json:"authorEmail"`
	Content     string               `json:"content"`
	Status      models.CommentStatus `json:"status"`
}

func (req *commentRequest) normalize() string {
	if req.Status == "" {
		req.Status = models.CommentPending
	}
	switch req.Status {
	case models.CommentPending, models.CommentApproved, models.CommentRejected:
	default:
		return "invalid status"
	}
	if strings.TrimSpace(req.AuthorName) == "" {
		return "authorName is required"
	}
	if msg := validateEmail(req.AuthorEmail); msg != "" {
		return msg
	}
	if strings.TrimSpace(req.Content) == "" {
		return "content is required"
	}
	if utf8.RuneCountInString(req.Content) > maxCommentLen {
		return "content is too long (max 5,000 characters)"
	}
	return ""
}

func commentFilters(r *http.Request) (models.CommentFilters, string) {
	var f models.CommentFilters
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := models.CommentStatus(raw)
		switch status {
		case models.CommentPending, models.CommentApproved, models.CommentRejected:
		default:
			return f, "invalid status"
		}
		f.Status = &status
	}
	newsID, err := queryInt64(r, "newsId")
	if err != nil {
		return f, err.Error()
	}
	f.NewsID = newsID
	return f, ""
}

// CommentsList returns comments newest first, narrowed by the optional
// status/newsId query parameters.
func (a *API) CommentsList(w http.ResponseWriter, r *http.Request) {
	filters, msg := commentFilters(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	items, err := a.stores.Comments.List(filters)
	if err != nil {
		serverError(w, "list comments", err)
		return
	}
	if items == nil {
		items = []models.Comment{}
	}
	writeJSON(w, http.StatusOK, items)
}

// CommentGet returns a single comment.
func (a *API) CommentGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.stores.Comments.FindByID(id)
	if err != nil {
		serverError(w, "find comment", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// CommentCreate inserts a comment. The news reference is not validated;
// moderation weeds out comments on deleted news.
func (a *API) CommentCreate(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if req.NewsID < 1 {
		writeError(w, http.StatusBadRequest, "newsId is required")
		return
	}
	created, err := a.stores.Comments.Create(&models.Comment{
		NewsID:      req.NewsID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Content:     req.Content,
		Status:      req.Status,
	})
	if err != nil {
		storeError(w, "create comment", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// CommentUpdate replaces the writable fields of a comment. Moderation is
// a status change through this endpoint.
func (a *API) CommentUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var req commentRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	updated, err := a.stores.Comments.Update(&models.Comment{
		ID:          id,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Content:     req.Content,
		Status:      req.Status,
	})
	if err != nil {
		storeError(w, "update comment", err)
		return
	}
	if updated == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// CommentDelete removes a comment.
func (a *API) CommentDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	deleted, err := a.stores.Comments.Delete(id)
	if err != nil {
		serverError(w, "delete comment", err)
		return
	}
	if !deleted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
