package store

import (
	"database/sql"
	"fmt"

	"gazete/internal/models"
)

// StatsStore aggregates the dashboard numbers from the news, users, and
// comments tables.
type StatsStore struct {
	db *sql.DB
}

// NewStatsStore returns a new StatsStore.
func NewStatsStore(db *sql.DB) *StatsStore {
	return &StatsStore{db: db}
}

// Stats runs the four independent dashboard aggregations. TodayViews sums
// the lifetime view counters of news published today; the system keeps no
// per-view event log to count actual views recorded today.
func (s *StatsStore) Stats() (*models.Stats, error) {
	var st models.Stats

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM news`).Scan(&st.TotalNews); err != nil {
		return nil, fmt.Errorf("count news: %w", err)
	}

	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM users WHERE role = $1 AND is_active = TRUE
	`, models.RoleWriter).Scan(&st.ActiveWriters)
	if err != nil {
		return nil, fmt.Errorf("count active writers: %w", err)
	}

	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM comments WHERE status = $1
	`, models.CommentPending).Scan(&st.PendingComments)
	if err != nil {
		return nil, fmt.Errorf("count pending comments: %w", err)
	}

	var todayViews sql.NullInt64
	err = s.db.QueryRow(`
		SELECT SUM(view_count) FROM news WHERE published_at::date = CURRENT_DATE
	`).Scan(&todayViews)
	if err != nil {
		return nil, fmt.Errorf("sum today views: %w", err)
	}
	st.TodayViews = todayViews.Int64

	return &st, nil
}
