package memstore

import (
	"fmt"
	"time"

	"gazete/internal/models"
	"gazete/internal/store"
)

// News returns the news view.
func (s *Store) News() *News { return &News{s} }

// News is the in-memory counterpart of the SQL news store. Enriched reads
// resolve the author and category from the user/category maps; rows whose
// references dangle are dropped, matching the SQL inner join.
type News struct {
	s *Store
}

// enrich resolves the author and category projections for a news row.
// Returns nil when either reference dangles. Callers must hold the lock.
func (v *News) enrich(n models.News) *models.NewsWithDetails {
	author, ok := v.s.users[n.AuthorID]
	if !ok {
		return nil
	}
	category, ok := v.s.categories[n.CategoryID]
	if !ok {
		return nil
	}
	return &models.NewsWithDetails{
		News: n,
		Author: models.Author{
			ID: author.ID, FirstName: author.FirstName,
			LastName: author.LastName, Username: author.Username,
		},
		Category: models.CategoryRef{ID: category.ID, Name: category.Name, Slug: category.Slug},
	}
}

func matchNews(n models.News, f models.NewsFilters) bool {
	if f.Status != nil && n.Status != *f.Status {
		return false
	}
	if f.CategoryID != nil && n.CategoryID != *f.CategoryID {
		return false
	}
	if f.AuthorID != nil && n.AuthorID != *f.AuthorID {
		return false
	}
	return true
}

// FindByID retrieves an enriched news item. Returns nil if the row does
// not exist or its references dangle.
func (v *News) FindByID(id int64) (*models.NewsWithDetails, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	n, ok := v.s.news[id]
	if !ok {
		return nil, nil
	}
	return v.enrich(n), nil
}

// FindBySlug retrieves an enriched news item by slug.
func (v *News) FindBySlug(slug string) (*models.NewsWithDetails, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	for _, n := range v.s.news {
		if n.Slug == slug {
			return v.enrich(n), nil
		}
	}
	return nil, nil
}

// FindRowByID retrieves the base news row without enrichment.
func (v *News) FindRowByID(id int64) (*models.News, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if n, ok := v.s.news[id]; ok {
		return &n, nil
	}
	return nil, nil
}

// List returns enriched news, newest first, narrowed by the set filters.
// Rows with dangling references are omitted.
func (v *News) List(f models.NewsFilters) ([]models.NewsWithDetails, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var items []models.NewsWithDetails
	for _, n := range v.s.news {
		if !matchNews(n, f) {
			continue
		}
		if enriched := v.enrich(n); enriched != nil {
			items = append(items, *enriched)
		}
	}
	newerFirst(items,
		func(n models.NewsWithDetails) time.Time { return n.CreatedAt },
		func(n models.NewsWithDetails) int64 { return n.ID },
	)
	return items, nil
}

// Create inserts a new news item.
func (v *News) Create(n *models.News) (*models.News, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for _, existing := range v.s.news {
		if existing.Slug == n.Slug {
			return nil, fmt.Errorf("create news: %w", store.ErrConflict)
		}
	}

	created := *n
	created.ID = v.s.nextID("news")
	now := time.Now()
	created.CreatedAt = now
	created.UpdatedAt = now
	if created.Status == models.StatusPublished && created.PublishedAt == nil {
		created.PublishedAt = &now
	}
	v.s.news[created.ID] = created
	return &created, nil
}

// Update modifies an existing news item. Returns nil if the id does not exist.
func (v *News) Update(n *models.News) (*models.News, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	current, ok := v.s.news[n.ID]
	if !ok {
		return nil, nil
	}
	for _, existing := range v.s.news {
		if existing.ID != n.ID && existing.Slug == n.Slug {
			return nil, fmt.Errorf("update news: %w", store.ErrConflict)
		}
	}

	updated := *n
	updated.CreatedAt = current.CreatedAt
	updated.ViewCount = current.ViewCount
	updated.UpdatedAt = time.Now()
	if updated.Status == models.StatusPublished && updated.PublishedAt == nil {
		now := updated.UpdatedAt
		updated.PublishedAt = &now
	}
	v.s.news[n.ID] = updated
	return &updated, nil
}

// Delete removes a news item. Reports whether a row was deleted.
func (v *News) Delete(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.news[id]; !ok {
		return false, nil
	}
	delete(v.s.news, id)
	return true, nil
}

// IncrementViews bumps the view counter under the store lock, so
// concurrent increments are never lost.
func (v *News) IncrementViews(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	n, ok := v.s.news[id]
	if !ok {
		return false, nil
	}
	n.ViewCount++
	v.s.news[id] = n
	return true, nil
}
