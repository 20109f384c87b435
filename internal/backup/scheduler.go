package backup

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// checkInterval is how often the scheduler re-reads the settings and
// decides whether a dump is due. Settings changes take effect on the
// next tick without a restart.
const checkInterval = time.Hour

// Scheduler runs automatic dumps in the background when enabled in the
// backup settings.
type Scheduler struct {
	manager *Manager
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewScheduler returns a stopped scheduler for m.
func NewScheduler(m *Manager) *Scheduler {
	return &Scheduler{manager: m, stopCh: make(chan struct{})}
}

// Start launches the background loop. Call Stop to shut it down.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	slog.Info("backup scheduler started", "interval", checkInterval)
}

// Stop signals the loop to exit and waits for it. A dump already in
// flight finishes first.
func (s *Scheduler) Stop() {
	close(s.stopCh)
	s.wg.Wait()
	slog.Info("backup scheduler stopped")
}

func (s *Scheduler) run() {
	defer s.wg.Done()
	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Scheduler) tick() {
	settings, err := s.manager.Settings()
	if err != nil {
		slog.Error("backup scheduler: load settings", "error", err)
		return
	}
	if !settings.AutoBackup {
		return
	}
	due, err := s.due(frequencyInterval(settings.Frequency))
	if err != nil {
		slog.Error("backup scheduler: check last backup", "error", err)
		return
	}
	if !due {
		return
	}
	if _, err := s.manager.createAuto(context.Background()); err != nil {
		slog.Error("backup scheduler: automatic backup failed", "error", err)
	}
}

// due reports whether the newest automatic backup is older than the
// configured interval. Manual backups do not reset the clock.
func (s *Scheduler) due(interval time.Duration) (bool, error) {
	files, err := s.manager.List()
	if err != nil {
		return false, err
	}
	for _, f := range files {
		if !strings.HasPrefix(f.Filename, "auto-") {
			continue
		}
		return time.Since(f.CreatedAt) >= interval, nil
	}
	// No automatic backup yet.
	return true, nil
}

func frequencyInterval(frequency string) time.Duration {
	switch frequency {
	case "weekly":
		return 7 * 24 * time.Hour
	case "monthly":
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}
