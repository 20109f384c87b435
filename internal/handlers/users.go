package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"gazete/internal/models"
)

// userRequest carries the writable user fields. Password is only read on
// create and on the dedicated password change, never returned.
type userRequest struct {
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Password  string      `json:"password,omitempty"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Role      models.Role `json:"role"`
	IsActive  *bool       `json:"isActive"`
}

func (req *userRequest) normalize(requirePassword bool) string {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return "username is required"
	}
	if utf8.RuneCountInString(req.Username) > maxUsernameLen {
		return "username is too long (max 100 characters)"
	}
	if msg := validateEmail(req.Email); msg != "" {
		return msg
	}
	switch req.Role {
	case models.RoleAdmin, models.RoleEditor, models.RoleWriter:
	default:
		return "invalid role"
	}
	if requirePassword && utf8.RuneCountInString(req.Password) < minPasswordLen {
		return "password must be at least 6 characters"
	}
	return ""
}

func (req *userRequest) toModel() *models.User {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		IsActive:  active,
	}
}

// UsersList returns all users, newest first. Password hashes never
// serialize.
func (a *API) UsersList(w http.ResponseWriter, r *http.Request) {
	items, err := a.stores.Users.List()
	if err != nil {
		serverError(w, "list users", err)
		return
	}
	if items == nil {
		items = []models.User{}
	}
	writeJSON(w, http.StatusOK, items)
}

// UserGet returns a single user.
func (a *API) UserGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.stores.Users.FindByID(id)
	if err != nil {
		serverError(w, "find user", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// UserCreate inserts a user with a hashed password.
func (a *API) UserCreate(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(true); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	// Friendly duplicate check; the unique index still backstops races.
	existing, err := a.stores.Users.FindByUsername(req.Username)
	if err != nil {
		serverError(w, "find user", err)
		return
	}
	if existing != nil {
		writeError(w, http.StatusConflict, "already exists")
		return
	}
	created, err := a.stores.Users.Create(req.toModel(), req.Password)
	if err != nil {
		storeError(w, "create user", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UserUpdate replaces a user's profile fields. A non-empty password in
// the payload also rotates the password.
func (a *API) UserUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var req userRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.normalize(false); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if req.Password != "" && utf8.RuneCountInString(req.Password) < minPasswordLen {
		writeError(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	u := req.toModel()
	u.ID = id
	updated, err := a.stores.Users.Update(u)
	if err != nil {
		storeError(w, "update user", err)
		return
	}
	if updated == nil {
		notFound(w)
		return
	}
	if req.Password != "" {
		if err := a.stores.Users.SetPassword(id, req.Password); err != nil {
			serverError(w, "set password", err)
			return
		}
	}
	writeJSON(w, http.StatusOK, updated)
}

// UserDelete removes a user. Content authored by the user keeps its
// author id and drops out of enriched reads.
func (a *API) UserDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	deleted, err := a.stores.Users.Delete(id)
	if err != nil {
		serverError(w, "delete user", err)
		return
	}
	if !deleted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
