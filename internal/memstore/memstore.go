// Package memstore provides an in-memory storage backend with the same
// method surface as the SQL stores. It exists for environments without a
// live PostgreSQL instance (local development, handler tests) and holds
// the full dataset in mutex-guarded maps with auto-incrementing ids.
//
// The store is single-process only. It is not a cache and must not be
// deployed behind more than one server process.
package memstore

import (
	"sort"
	"sync"
	"time"

	"gazete/internal/models"
)

// Store is the root of the in-memory backend. Per-entity views share one
// lock; every operation takes it for its full duration.
type Store struct {
	mu  sync.RWMutex
	seq map[string]int64

	users             map[int64]models.User
	categories        map[int64]models.Category
	cities            map[int64]models.City
	sources           map[int64]models.Source
	news              map[int64]models.News
	articles          map[int64]models.Article
	comments          map[int64]models.Comment
	media             map[int64]models.Media
	ads               map[int64]models.Advertisement
	classifieds       map[int64]models.ClassifiedAd
	magazines         map[int64]models.DigitalMagazine
	magazineCats      map[int64]models.MagazineCategory
	newspaperPages    map[int64]models.NewspaperPage
	settings          map[string]string
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		seq:            make(map[string]int64),
		users:          make(map[int64]models.User),
		categories:     make(map[int64]models.Category),
		cities:         make(map[int64]models.City),
		sources:        make(map[int64]models.Source),
		news:           make(map[int64]models.News),
		articles:       make(map[int64]models.Article),
		comments:       make(map[int64]models.Comment),
		media:          make(map[int64]models.Media),
		ads:            make(map[int64]models.Advertisement),
		classifieds:    make(map[int64]models.ClassifiedAd),
		magazines:      make(map[int64]models.DigitalMagazine),
		magazineCats:   make(map[int64]models.MagazineCategory),
		newspaperPages: make(map[int64]models.NewspaperPage),
		settings:       make(map[string]string),
	}
}

// nextID returns the next auto-increment value for a table. Callers must
// hold the write lock.
func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

// newerFirst sorts ids so the entity with the latest creation time comes
// first, breaking ties on the higher id.
func newerFirst[T any](items []T, createdAt func(T) time.Time, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool {
		a, b := createdAt(items[i]), createdAt(items[j])
		if a.Equal(b) {
			return id(items[i]) > id(items[j])
		}
		return a.After(b)
	})
}

// Settings returns the key-value settings view.
func (s *Store) Settings() *Settings { return &Settings{s} }

// Settings is the in-memory counterpart of the SQL setting store.
type Settings struct {
	s *Store
}

// Get returns a setting value, or the fallback when unset or empty.
func (v *Settings) Get(key, fallback string) (string, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if val, ok := v.s.settings[key]; ok && val != "" {
		return val, nil
	}
	return fallback, nil
}

// Set stores a setting value.
func (v *Settings) Set(key, value string) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.settings[key] = value
	return nil
}

// StatsView returns the dashboard aggregation view.
func (s *Store) StatsView() *StatsView { return &StatsView{s} }

// StatsView aggregates the dashboard numbers from the in-memory maps.
type StatsView struct {
	s *Store
}

// Stats mirrors the SQL stats aggregation, including the "views of news
// published today" reading of TodayViews.
func (v *StatsView) Stats() (*models.Stats, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()

	var st models.Stats
	st.TotalNews = len(v.s.news)
	for _, u := range v.s.users {
		if u.Role == models.RoleWriter && u.IsActive {
			st.ActiveWriters++
		}
	}
	for _, c := range v.s.comments {
		if c.Status == models.CommentPending {
			st.PendingComments++
		}
	}
	today := time.Now()
	for _, n := range v.s.news {
		if n.PublishedAt != nil && sameDay(*n.PublishedAt, today) {
			st.TodayViews += n.ViewCount
		}
	}
	return &st, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
