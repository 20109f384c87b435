package memstore

import (
	"time"

	"gazete/internal/models"
)

// MediaFiles returns the media view.
func (s *Store) MediaFiles() *MediaFiles { return &MediaFiles{s} }

// MediaFiles is the in-memory counterpart of the SQL media store.
type MediaFiles struct {
	s *Store
}

// List returns media items newest first.
func (v *MediaFiles) List() ([]models.Media, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var items []models.Media
	for _, m := range v.s.media {
		items = append(items, m)
	}
	newerFirst(items,
		func(m models.Media) time.Time { return m.CreatedAt },
		func(m models.Media) int64 { return m.ID },
	)
	return items, nil
}

// FindByID retrieves a media item by ID. Returns nil if not found.
func (v *MediaFiles) FindByID(id int64) (*models.Media, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if m, ok := v.s.media[id]; ok {
		return &m, nil
	}
	return nil, nil
}

// Create inserts a new media record and returns it.
func (v *MediaFiles) Create(m *models.Media) (*models.Media, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	created := *m
	created.ID = v.s.nextID("media")
	created.CreatedAt = time.Now()
	v.s.media[created.ID] = created
	return &created, nil
}

// Delete removes a media record and returns the deleted row, so the
// caller can remove the underlying file. Returns nil if the id does not
// exist.
func (v *MediaFiles) Delete(id int64) (*models.Media, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	m, ok := v.s.media[id]
	if !ok {
		return nil, nil
	}
	delete(v.s.media, id)
	return &m, nil
}
