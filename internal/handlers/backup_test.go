package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gazete/internal/backup"
	"gazete/internal/config"
	"gazete/internal/memstore"
)

// backupFixture wires a real backup manager over a temp directory. The
// restore validation paths reject bad input before any database tool
// would run.
func backupFixture(t *testing.T) *fixture {
	t.Helper()
	mgr, err := backup.NewManager(&config.Config{BackupDir: t.TempDir()}, memstore.New().Settings())
	if err != nil {
		t.Fatalf("backup manager: %v", err)
	}
	return newFixtureWith(t, nil, mgr)
}

func TestBackupRestoreRejectsMalformedBody(t *testing.T) {
	f := backupFixture(t)

	req := httptest.NewRequest("POST", "/api/backup/restore", strings.NewReader("this is not a multipart payload"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=abc")
	w := httptest.NewRecorder()
	f.srv.ServeHTTP(w, req)
	f.want(w, http.StatusBadRequest)
}

func TestBackupRestoreValidatesDumpFile(t *testing.T) {
	f := backupFixture(t)

	w := f.doMultipart("/api/backup/restore", nil, "", "", nil)
	f.want(w, http.StatusBadRequest)

	w = f.doMultipart("/api/backup/restore", nil, "backupFile", "yedek.tar.gz", []byte("binary"))
	f.want(w, http.StatusBadRequest)

	w = f.doMultipart("/api/backup/restore", nil, "backupFile", "yedek.sql", nil)
	f.want(w, http.StatusBadRequest)
}
