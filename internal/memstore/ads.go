package memstore

import (
	"sort"
	"time"

	"gazete/internal/models"
)

// Ads returns the advertisement view.
func (s *Store) Ads() *Ads { return &Ads{s} }

// Ads is the in-memory counterpart of the SQL advertisement store.
type Ads struct {
	s *Store
}

func matchAd(a models.Advertisement, f models.AdFilters) bool {
	if f.IsActive != nil && a.IsActive != *f.IsActive {
		return false
	}
	if f.Position != nil && a.Position != *f.Position {
		return false
	}
	return true
}

// List returns advertisements ordered by priority descending, newest
// first within the same priority.
func (v *Ads) List(f models.AdFilters) ([]models.Advertisement, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var items []models.Advertisement
	for _, a := range v.s.ads {
		if matchAd(a, f) {
			items = append(items, a)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Priority != items[j].Priority {
			return items[i].Priority > items[j].Priority
		}
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items, nil
}

// FindByID retrieves an advertisement by ID. Returns nil if not found.
func (v *Ads) FindByID(id int64) (*models.Advertisement, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if a, ok := v.s.ads[id]; ok {
		return &a, nil
	}
	return nil, nil
}

// Create inserts a new advertisement and returns it.
func (v *Ads) Create(a *models.Advertisement) (*models.Advertisement, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	created := *a
	created.ID = v.s.nextID("advertisements")
	created.CreatedAt = time.Now()
	created.ClickCount = 0
	created.Impressions = 0
	v.s.ads[created.ID] = created
	return &created, nil
}

// Update modifies an existing advertisement. Counters only move through
// the increment methods. Returns nil if the id does not exist.
func (v *Ads) Update(a *models.Advertisement) (*models.Advertisement, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	current, ok := v.s.ads[a.ID]
	if !ok {
		return nil, nil
	}
	updated := *a
	updated.ClickCount = current.ClickCount
	updated.Impressions = current.Impressions
	updated.CreatedBy = current.CreatedBy
	updated.CreatedAt = current.CreatedAt
	v.s.ads[a.ID] = updated
	return &updated, nil
}

// Delete removes an advertisement by ID. Reports whether a row was deleted.
func (v *Ads) Delete(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.ads[id]; !ok {
		return false, nil
	}
	delete(v.s.ads, id)
	return true, nil
}

// IncrementClicks bumps the click counter.
func (v *Ads) IncrementClicks(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	a, ok := v.s.ads[id]
	if !ok {
		return false, nil
	}
	a.ClickCount++
	v.s.ads[id] = a
	return true, nil
}

// IncrementImpressions bumps the impression counter.
func (v *Ads) IncrementImpressions(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	a, ok := v.s.ads[id]
	if !ok {
		return false, nil
	}
	a.Impressions++
	v.s.ads[id] = a
	return true, nil
}
