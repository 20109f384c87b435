package memstore

import (
	"fmt"
	"sort"
	"time"

	"gazete/internal/models"
	"gazete/internal/store"
)

// Magazines returns the digital magazine view.
func (s *Store) Magazines() *Magazines { return &Magazines{s} }

// Magazines is the in-memory counterpart of the SQL magazine store.
type Magazines struct {
	s *Store
}

func matchMagazine(m models.DigitalMagazine, f models.MagazineFilters) bool {
	if f.IsPublished != nil && m.IsPublished != *f.IsPublished {
		return false
	}
	if f.CategoryID != nil && (m.CategoryID == nil || *m.CategoryID != *f.CategoryID) {
		return false
	}
	if f.IsFeatured != nil && m.IsFeatured != *f.IsFeatured {
		return false
	}
	return true
}

// List returns magazines newest first, narrowed by the set filters.
func (v *Magazines) List(f models.MagazineFilters) ([]models.DigitalMagazine, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var items []models.DigitalMagazine
	for _, m := range v.s.magazines {
		if matchMagazine(m, f) {
			items = append(items, m)
		}
	}
	newerFirst(items,
		func(m models.DigitalMagazine) time.Time { return m.CreatedAt },
		func(m models.DigitalMagazine) int64 { return m.ID },
	)
	return items, nil
}

// FindByID retrieves a magazine by ID. Returns nil if not found.
func (v *Magazines) FindByID(id int64) (*models.DigitalMagazine, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if m, ok := v.s.magazines[id]; ok {
		return &m, nil
	}
	return nil, nil
}

// Create inserts a new magazine issue and returns it.
func (v *Magazines) Create(m *models.DigitalMagazine) (*models.DigitalMagazine, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for _, existing := range v.s.magazines {
		if existing.Slug == m.Slug {
			return nil, fmt.Errorf("create magazine: %w", store.ErrConflict)
		}
	}

	created := *m
	created.ID = v.s.nextID("digital_magazines")
	created.CreatedAt = time.Now()
	created.DownloadCount = 0
	v.s.magazines[created.ID] = created
	return &created, nil
}

// Update modifies an existing magazine issue. Returns nil if the id does
// not exist.
func (v *Magazines) Update(m *models.DigitalMagazine) (*models.DigitalMagazine, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	current, ok := v.s.magazines[m.ID]
	if !ok {
		return nil, nil
	}
	for _, existing := range v.s.magazines {
		if existing.ID != m.ID && existing.Slug == m.Slug {
			return nil, fmt.Errorf("update magazine: %w", store.ErrConflict)
		}
	}

	updated := *m
	updated.DownloadCount = current.DownloadCount
	updated.CreatedAt = current.CreatedAt
	v.s.magazines[m.ID] = updated
	return &updated, nil
}

// Delete removes a magazine by ID. Reports whether a row was deleted.
func (v *Magazines) Delete(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.magazines[id]; !ok {
		return false, nil
	}
	delete(v.s.magazines, id)
	return true, nil
}

// IncrementDownloads bumps the download counter.
func (v *Magazines) IncrementDownloads(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	m, ok := v.s.magazines[id]
	if !ok {
		return false, nil
	}
	m.DownloadCount++
	v.s.magazines[id] = m
	return true, nil
}

// MagazineCategories returns the magazine category view.
func (s *Store) MagazineCategories() *MagazineCategories { return &MagazineCategories{s} }

// MagazineCategories is the in-memory counterpart of the SQL magazine
// category store.
type MagazineCategories struct {
	s *Store
}

// List returns magazine categories ordered by name.
func (v *MagazineCategories) List() ([]models.MagazineCategory, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var items []models.MagazineCategory
	for _, c := range v.s.magazineCats {
		items = append(items, c)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// FindByID retrieves a magazine category by ID. Returns nil if not found.
func (v *MagazineCategories) FindByID(id int64) (*models.MagazineCategory, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if c, ok := v.s.magazineCats[id]; ok {
		return &c, nil
	}
	return nil, nil
}

// Create inserts a new magazine category and returns it.
func (v *MagazineCategories) Create(c *models.MagazineCategory) (*models.MagazineCategory, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for _, existing := range v.s.magazineCats {
		if existing.Slug == c.Slug {
			return nil, fmt.Errorf("create magazine category: %w", store.ErrConflict)
		}
	}

	created := *c
	created.ID = v.s.nextID("magazine_categories")
	created.CreatedAt = time.Now()
	v.s.magazineCats[created.ID] = created
	return &created, nil
}

// Update modifies an existing magazine category. Returns nil if the id
// does not exist.
func (v *MagazineCategories) Update(c *models.MagazineCategory) (*models.MagazineCategory, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	current, ok := v.s.magazineCats[c.ID]
	if !ok {
		return nil, nil
	}
	for _, existing := range v.s.magazineCats {
		if existing.ID != c.ID && existing.Slug == c.Slug {
			return nil, fmt.Errorf("update magazine category: %w", store.ErrConflict)
		}
	}

	updated := *c
	updated.CreatedAt = current.CreatedAt
	v.s.magazineCats[c.ID] = updated
	return &updated, nil
}

// Delete removes a magazine category by ID. Reports whether a row was
// deleted.
func (v *MagazineCategories) Delete(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.magazineCats[id]; !ok {
		return false, nil
	}
	delete(v.s.magazineCats, id)
	return true, nil
}

// NewspaperPages returns the newspaper page view.
func (s *Store) NewspaperPages() *NewspaperPages { return &NewspaperPages{s} }

// NewspaperPages is the in-memory counterpart of the SQL newspaper page
// store.
type NewspaperPages struct {
	s *Store
}

// List returns newspaper pages by issue date descending, page number
// ascending within an issue.
func (v *NewspaperPages) List() ([]models.NewspaperPage, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var items []models.NewspaperPage
	for _, p := range v.s.newspaperPages {
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].IssueDate.Equal(items[j].IssueDate) {
			return items[i].IssueDate.After(items[j].IssueDate)
		}
		return items[i].PageNumber < items[j].PageNumber
	})
	return items, nil
}

// FindByID retrieves a newspaper page by ID. Returns nil if not found.
func (v *NewspaperPages) FindByID(id int64) (*models.NewspaperPage, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if p, ok := v.s.newspaperPages[id]; ok {
		return &p, nil
	}
	return nil, nil
}

// Create inserts a new newspaper page and returns it.
func (v *NewspaperPages) Create(p *models.NewspaperPage) (*models.NewspaperPage, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	created := *p
	created.ID = v.s.nextID("newspaper_pages")
	created.CreatedAt = time.Now()
	v.s.newspaperPages[created.ID] = created
	return &created, nil
}

// Update modifies an existing newspaper page. Returns nil if the id does
// not exist.
func (v *NewspaperPages) Update(p *models.NewspaperPage) (*models.NewspaperPage, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	current, ok := v.s.newspaperPages[p.ID]
	if !ok {
		return nil, nil
	}
	updated := *p
	updated.CreatedAt = current.CreatedAt
	v.s.newspaperPages[p.ID] = updated
	return &updated, nil
}

// Delete removes a newspaper page by ID. Reports whether a row was deleted.
func (v *NewspaperPages) Delete(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.newspaperPages[id]; !ok {
		return false, nil
	}
	delete(v.s.newspaperPages, id)
	return true, nil
}
