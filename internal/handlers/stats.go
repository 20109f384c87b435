package handlers

import (
	"net/http"
	"time"
)

// Stats returns the dashboard summary. The aggregation touches several
// tables, so the result goes through the optional Redis cache.
func (a *API) Stats(w http.ResponseWriter, r *http.Request) {
	if cached := a.statsCache.Get(r.Context()); cached != nil {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	stats, err := a.stores.Stats.Stats()
	if err != nil {
		serverError(w, "compute stats", err)
		return
	}
	a.statsCache.Set(r.Context(), stats)
	writeJSON(w, http.StatusOK, stats)
}

// Health reports liveness and process uptime.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": time.Since(a.startedAt).Round(time.Second).String(),
	})
}
