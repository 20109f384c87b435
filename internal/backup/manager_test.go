package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gazete/internal/config"
	"gazete/internal/memstore"
	"gazete/internal/models"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	cfg := &config.Config{BackupDir: t.TempDir()}
	m, err := NewManager(cfg, memstore.New().Settings())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func writeBackup(t *testing.T, m *Manager, name string, size int, modTime time.Time) {
	t.Helper()
	path := filepath.Join(m.dir, name)
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatalf("chtimes %s: %v", name, err)
	}
}

func TestListClassifiesAndSorts(t *testing.T) {
	m := testManager(t)
	now := time.Now()
	writeBackup(t, m, "backup-2026-01-01T10-00-00.sql", 100, now.Add(-2*time.Hour))
	writeBackup(t, m, "auto-backup-2026-01-01T12-00-00.sql", 200, now.Add(-time.Hour))
	writeBackup(t, m, "backup-2026-01-01T14-00-00.sql", 300, now)
	// Non-dump files are ignored.
	writeBackup(t, m, "notes.txt", 50, now)

	files, err := m.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3", len(files))
	}

	wantOrder := []string{
		"backup-2026-01-01T14-00-00.sql",
		"auto-backup-2026-01-01T12-00-00.sql",
		"backup-2026-01-01T10-00-00.sql",
	}
	for i, want := range wantOrder {
		if files[i].Filename != want {
			t.Errorf("files[%d] = %s, want %s", i, files[i].Filename, want)
		}
	}
	if files[0].Kind != models.BackupKindManual {
		t.Errorf("manual backup kind = %s, want %s", files[0].Kind, models.BackupKindManual)
	}
	if files[1].Kind != models.BackupKindAuto {
		t.Errorf("auto backup kind = %s, want %s", files[1].Kind, models.BackupKindAuto)
	}
}

func TestFormatMB(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0.00 MB"},
		{1024 * 1024, "1.00 MB"},
		{5*1024*1024 + 512*1024, "5.50 MB"},
		{1024, "0.00 MB"},
	}
	for _, tt := range tests {
		if got := formatMB(tt.bytes); got != tt.want {
			t.Errorf("formatMB(%d) = %s, want %s", tt.bytes, got, tt.want)
		}
	}
}

func TestPathRejectsTraversal(t *testing.T) {
	m := testManager(t)
	for _, name := range []string{"../etc/passwd.sql", "a/b.sql", "backup.txt", "/etc/backup.sql"} {
		if _, err := m.Path(name); err == nil {
			t.Errorf("Path(%q) accepted, want error", name)
		}
	}
}

func TestPathMissingFile(t *testing.T) {
	m := testManager(t)
	path, err := m.Path("backup-nope.sql")
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if path != "" {
		t.Errorf("Path = %q, want empty for missing file", path)
	}
}

func TestDelete(t *testing.T) {
	m := testManager(t)
	writeBackup(t, m, "backup-x.sql", 10, time.Now())

	deleted, err := m.Delete("backup-x.sql")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Error("Delete = false, want true")
	}

	deleted, err = m.Delete("backup-x.sql")
	if err != nil {
		t.Fatalf("Delete again: %v", err)
	}
	if deleted {
		t.Error("Delete of missing file = true, want false")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	m := testManager(t)

	s, err := m.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if s.AutoBackup || s.Frequency != "daily" {
		t.Errorf("default settings = %+v, want disabled daily", s)
	}

	if err := m.UpdateSettings(models.BackupSettings{AutoBackup: true, Frequency: "weekly"}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	s, err = m.Settings()
	if err != nil {
		t.Fatalf("Settings after update: %v", err)
	}
	if !s.AutoBackup || s.Frequency != "weekly" {
		t.Errorf("settings = %+v, want enabled weekly", s)
	}

	if err := m.UpdateSettings(models.BackupSettings{Frequency: "hourly"}); err == nil {
		t.Error("UpdateSettings accepted invalid frequency")
	}
}

func TestSchedulerDue(t *testing.T) {
	m := testManager(t)
	s := NewScheduler(m)

	due, err := s.due(24 * time.Hour)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if !due {
		t.Error("no automatic backup yet, want due")
	}

	// A fresh manual backup does not reset the clock.
	writeBackup(t, m, "backup-manual.sql", 10, time.Now())
	due, err = s.due(24 * time.Hour)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if !due {
		t.Error("manual backup should not satisfy the schedule")
	}

	writeBackup(t, m, "auto-backup-recent.sql", 10, time.Now().Add(-time.Hour))
	due, err = s.due(24 * time.Hour)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if due {
		t.Error("recent automatic backup, want not due")
	}

	writeBackup(t, m, "auto-backup-old.sql", 10, time.Now().Add(-48*time.Hour))
	// The recent auto backup is still the newest one.
	due, err = s.due(24 * time.Hour)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if due {
		t.Error("newest automatic backup is recent, want not due")
	}
}

func TestFrequencyInterval(t *testing.T) {
	tests := []struct {
		frequency string
		want      time.Duration
	}{
		{"daily", 24 * time.Hour},
		{"weekly", 7 * 24 * time.Hour},
		{"monthly", 30 * 24 * time.Hour},
		{"bogus", 24 * time.Hour},
	}
	for _, tt := range tests {
		if got := frequencyInterval(tt.frequency); got != tt.want {
			t.Errorf("frequencyInterval(%q) = %v, want %v", tt.frequency, got, tt.want)
		}
	}
}
