// Package backup creates, restores and manages PostgreSQL dumps using the
// pg_dump and psql client tools. Dumps live as .sql files in a single
// backup directory; there is no database table behind the listing.
package backup

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"gazete/internal/config"
	"gazete/internal/models"
)

// dumpTimeout bounds a single pg_dump or psql run.
const dumpTimeout = 5 * time.Minute

// Settings keys in the settings store.
const (
	settingAutoBackup = "backup_auto"
	settingFrequency  = "backup_frequency"
)

// SettingsStore is the slice of the settings store the manager needs.
type SettingsStore interface {
	Get(key, fallback string) (string, error)
	Set(key, value string) error
}

// Manager runs dump and restore operations against the configured
// database and manages the backup directory.
type Manager struct {
	dir      string
	cfg      *config.Config
	settings SettingsStore
}

// NewManager returns a Manager writing to cfg.BackupDir. The directory is
// created if missing.
func NewManager(cfg *config.Config, settings SettingsStore) (*Manager, error) {
	if err := os.MkdirAll(cfg.BackupDir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}
	return &Manager{dir: cfg.BackupDir, cfg: cfg, settings: settings}, nil
}

// stamp formats t for use in a filename. Colons are not legal in
// filenames on every filesystem, so the time portion uses hyphens.
func stamp(t time.Time) string {
	return t.Format("2006-01-02T15-04-05")
}

// Create runs pg_dump into a new manual backup file and returns its
// directory entry. Captured stderr becomes the error detail on failure.
func (m *Manager) Create(ctx context.Context) (*models.BackupFile, error) {
	return m.dump(ctx, fmt.Sprintf("backup-%s.sql", stamp(time.Now())))
}

// createAuto is the scheduler entry point. Automatic dumps carry the
// "auto-" prefix that List classifies on.
func (m *Manager) createAuto(ctx context.Context) (*models.BackupFile, error) {
	return m.dump(ctx, fmt.Sprintf("auto-backup-%s.sql", stamp(time.Now())))
}

func (m *Manager) dump(ctx context.Context, filename string) (*models.BackupFile, error) {
	if _, err := exec.LookPath("pg_dump"); err != nil {
		return nil, fmt.Errorf("pg_dump not found in PATH: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, dumpTimeout)
	defer cancel()

	path := filepath.Join(m.dir, filename)
	cmd := exec.CommandContext(ctx, "pg_dump",
		"-h", m.cfg.DBHost,
		"-p", m.cfg.DBPort,
		"-U", m.cfg.DBUser,
		"-d", m.cfg.DBName,
		"-f", path,
	)
	cmd.Env = append(os.Environ(), "PGPASSWORD="+m.cfg.DBPassword)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("pg_dump: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat backup: %w", err)
	}
	slog.Info("backup created", "file", filename, "bytes", info.Size())
	return m.fileEntry(filename, info), nil
}

// Restore applies an uploaded SQL dump with psql. The dump runs
// statement by statement, not in a transaction, so a failed restore can
// leave the database partially written. Callers are expected to have
// validated the upload.
func (m *Manager) Restore(ctx context.Context, dump io.Reader) error {
	if _, err := exec.LookPath("psql"); err != nil {
		return fmt.Errorf("psql not found in PATH: %w", err)
	}

	tmp, err := os.CreateTemp("", "restore-*.sql")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, dump); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, dumpTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "psql",
		"-h", m.cfg.DBHost,
		"-p", m.cfg.DBPort,
		"-U", m.cfg.DBUser,
		"-d", m.cfg.DBName,
		"-f", tmp.Name(),
	)
	cmd.Env = append(os.Environ(), "PGPASSWORD="+m.cfg.DBPassword)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("psql restore: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	slog.Info("backup restored")
	return nil
}

// List returns the .sql files in the backup directory, newest first.
func (m *Manager) List() ([]models.BackupFile, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}

	var files []models.BackupFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, *m.fileEntry(e.Name(), info))
	}
	sortNewestFirst(files)
	return files, nil
}

// Path resolves filename inside the backup directory, refusing names
// that escape it. Returns "" if the file does not exist.
func (m *Manager) Path(filename string) (string, error) {
	if filename != filepath.Base(filename) || !strings.HasSuffix(filename, ".sql") {
		return "", fmt.Errorf("invalid backup filename %q", filename)
	}
	path := filepath.Join(m.dir, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("stat backup: %w", err)
	}
	return path, nil
}

// Delete removes a backup file. Reports whether a file was deleted.
func (m *Manager) Delete(filename string) (bool, error) {
	path, err := m.Path(filename)
	if err != nil {
		return false, err
	}
	if path == "" {
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		return false, fmt.Errorf("delete backup: %w", err)
	}
	slog.Info("backup deleted", "file", filename)
	return true, nil
}

// Settings loads the persisted automatic backup configuration, applying
// defaults when unset.
func (m *Manager) Settings() (*models.BackupSettings, error) {
	auto, err := m.settings.Get(settingAutoBackup, "false")
	if err != nil {
		return nil, fmt.Errorf("load backup settings: %w", err)
	}
	freq, err := m.settings.Get(settingFrequency, "daily")
	if err != nil {
		return nil, fmt.Errorf("load backup settings: %w", err)
	}
	enabled, _ := strconv.ParseBool(auto)
	if !models.ValidFrequency(freq) {
		freq = "daily"
	}
	return &models.BackupSettings{AutoBackup: enabled, Frequency: freq}, nil
}

// UpdateSettings persists the automatic backup configuration.
func (m *Manager) UpdateSettings(s models.BackupSettings) error {
	if !models.ValidFrequency(s.Frequency) {
		return fmt.Errorf("invalid backup frequency %q", s.Frequency)
	}
	if err := m.settings.Set(settingAutoBackup, strconv.FormatBool(s.AutoBackup)); err != nil {
		return fmt.Errorf("save backup settings: %w", err)
	}
	if err := m.settings.Set(settingFrequency, s.Frequency); err != nil {
		return fmt.Errorf("save backup settings: %w", err)
	}
	return nil
}

func (m *Manager) fileEntry(name string, info os.FileInfo) *models.BackupFile {
	return &models.BackupFile{
		Filename:  name,
		Path:      filepath.Join(m.dir, name),
		Size:      formatMB(info.Size()),
		CreatedAt: info.ModTime(),
		Kind:      classify(name),
	}
}

// classify tells automatic dumps from manual ones by filename. The
// labels are displayed as-is by the admin panel.
func classify(name string) string {
	if strings.Contains(name, "auto") {
		return models.BackupKindAuto
	}
	return models.BackupKindManual
}

// formatMB renders a byte count in megabytes with two decimals, the
// format the admin panel expects for every file regardless of size.
func formatMB(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
}

func sortNewestFirst(files []models.BackupFile) {
	sort.Slice(files, func(i, j int) bool {
		return files[i].CreatedAt.After(files[j].CreatedAt)
	})
}
