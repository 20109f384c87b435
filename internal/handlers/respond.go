package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gazete/internal/store"
)

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// writeError writes a JSON error payload.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// notFound writes the standard 404 payload.
func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "not found")
}

// serverError logs err and writes the standard 500 payload.
func serverError(w http.ResponseWriter, action string, err error) {
	slog.Error(action+" failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// storeError maps a write error to the right response: unique
// violations become 409, everything else 500.
func storeError(w http.ResponseWriter, action string, err error) {
	if store.IsConflict(err) {
		writeError(w, http.StatusConflict, "already exists")
		return
	}
	serverError(w, action, err)
}

// urlID parses the {id} route parameter. Writes a 400 and returns false
// on garbage.
func urlID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// decode reads the request body into v, rejecting unknown fields so a
// client sending server-generated fields gets a 400 instead of a silent
// drop.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// queryInt64 parses an optional int64 query parameter. Returns an error
// for present-but-garbage values so filters fail loudly.
func queryInt64(r *http.Request, key string) (*int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.New("invalid " + key)
	}
	return &v, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(r *http.Request, key string) (*bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.New("invalid " + key)
	}
	return &v, nil
}
