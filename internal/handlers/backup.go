package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"gazete/internal/models"
)

// maxRestoreSize caps uploaded dump files (200 MB).
const maxRestoreSize = 200 << 20

// requireBackups guards the backup endpoints; the memory backend has no
// database to dump.
func (a *API) requireBackups(w http.ResponseWriter) bool {
	if a.backups == nil {
		writeError(w, http.StatusServiceUnavailable, "backups are not available on this storage backend")
		return false
	}
	return true
}

// BackupCreate runs a manual database dump.
func (a *API) BackupCreate(w http.ResponseWriter, r *http.Request) {
	if !a.requireBackups(w) {
		return
	}
	created, err := a.backups.Create(r.Context())
	if err != nil {
		serverError(w, "create backup", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// BackupList returns all dump files, newest first.
func (a *API) BackupList(w http.ResponseWriter, r *http.Request) {
	if !a.requireBackups(w) {
		return
	}
	files, err := a.backups.List()
	if err != nil {
		serverError(w, "list backups", err)
		return
	}
	if files == nil {
		files = []models.BackupFile{}
	}
	writeJSON(w, http.StatusOK, files)
}

// BackupDownload serves a dump file as an attachment.
func (a *API) BackupDownload(w http.ResponseWriter, r *http.Request) {
	if !a.requireBackups(w) {
		return
	}
	filename := chi.URLParam(r, "filename")
	path, err := a.backups.Path(filename)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filename")
		return
	}
	if path == "" {
		notFound(w)
		return
	}
	w.Header().Set("Content-Type", "application/sql")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	http.ServeFile(w, r, path)
}

// BackupDelete removes a dump file.
func (a *API) BackupDelete(w http.ResponseWriter, r *http.Request) {
	if !a.requireBackups(w) {
		return
	}
	deleted, err := a.backups.Delete(chi.URLParam(r, "filename"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filename")
		return
	}
	if !deleted {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BackupRestore applies an uploaded dump (multipart field "backupFile").
// The restore is destructive and not transactional; a failure can leave
// the database partially written.
func (a *API) BackupRestore(w http.ResponseWriter, r *http.Request) {
	if !a.requireBackups(w) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRestoreSize+1024)
	if err := r.ParseMultipartForm(maxRestoreSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "dump file too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}
	file, header, err := r.FormFile("backupFile")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no backup file provided")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".sql") {
		writeError(w, http.StatusBadRequest, "backup file must be a .sql dump")
		return
	}
	if header.Size == 0 {
		writeError(w, http.StatusBadRequest, "backup file is empty")
		return
	}

	if err := a.backups.Restore(r.Context(), file); err != nil {
		serverError(w, "restore backup", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}

// BackupSettingsGet returns the automatic backup configuration.
func (a *API) BackupSettingsGet(w http.ResponseWriter, r *http.Request) {
	if !a.requireBackups(w) {
		return
	}
	settings, err := a.backups.Settings()
	if err != nil {
		serverError(w, "load backup settings", err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// BackupSettingsUpdate persists the automatic backup configuration.
func (a *API) BackupSettingsUpdate(w http.ResponseWriter, r *http.Request) {
	if !a.requireBackups(w) {
		return
	}
	var req models.BackupSettings
	if !decode(w, r, &req) {
		return
	}
	if !models.ValidFrequency(req.Frequency) {
		writeError(w, http.StatusBadRequest, "frequency must be daily, weekly or monthly")
		return
	}
	if err := a.backups.UpdateSettings(req); err != nil {
		serverError(w, "save backup settings", err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
