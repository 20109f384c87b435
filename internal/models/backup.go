package models

import "time"

// Backup kinds, classified from the dump filename. Automatic backups are
// written with an "auto-backup-" prefix by the scheduler; everything else
// is treated as a manual backup. The labels are what the admin panel
// displays.
const (
	BackupKindAuto   = "Otomatik"
	BackupKindManual = "Manuel"
)

// BackupFile describes a single SQL dump on disk. There is no database
// row behind this type; it is a projection of the backup directory.
type BackupFile struct {
	Filename  string    `json:"filename"`
	Path      string    `json:"path"`
	Size      string    `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
	Kind      string    `json:"kind"`
}

// BackupSettings holds the automatic backup configuration.
type BackupSettings struct {
	AutoBackup bool   `json:"autoBackup"`
	Frequency  string `json:"frequency"`
}

// ValidFrequency reports whether f is an accepted backup frequency.
func ValidFrequency(f string) bool {
	switch f {
	case "daily", "weekly", "monthly":
		return true
	}
	return false
}

// Stats is the dashboard summary returned by the stats endpoint.
// TodayViews sums the view counters of news published today; it is not a
// log of view events (none exists in this system).
type Stats struct {
	TotalNews       int   `json:"totalNews"`
	ActiveWriters   int   `json:"activeWriters"`
	PendingComments int   `json:"pendingComments"`
	TodayViews      int64 `json:"todayViews"`
}
