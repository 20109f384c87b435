package memstore

import (
	"fmt"
	"time"

	"gazete/internal/models"
	"gazete/internal/store"
)

// Articles returns the article view.
func (s *Store) Articles() *Articles { return &Articles{s} }

// Articles is the in-memory counterpart of the SQL article store.
type Articles struct {
	s *Store
}

func (v *Articles) enrich(a models.Article) *models.ArticleWithDetails {
	author, ok := v.s.users[a.AuthorID]
	if !ok {
		return nil
	}
	category, ok := v.s.categories[a.CategoryID]
	if !ok {
		return nil
	}
	return &models.ArticleWithDetails{
		Article: a,
		Author: models.Author{
			ID: author.ID, FirstName: author.FirstName,
			LastName: author.LastName, Username: author.Username,
		},
		Category: models.CategoryRef{ID: category.ID, Name: category.Name, Slug: category.Slug},
	}
}

func matchArticle(a models.Article, f models.ArticleFilters) bool {
	if f.Status != nil && a.Status != *f.Status {
		return false
	}
	if f.CategoryID != nil && a.CategoryID != *f.CategoryID {
		return false
	}
	if f.AuthorID != nil && a.AuthorID != *f.AuthorID {
		return false
	}
	return true
}

// FindByID retrieves an enriched article. Returns nil if the row does not
// exist or its references dangle.
func (v *Articles) FindByID(id int64) (*models.ArticleWithDetails, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	a, ok := v.s.articles[id]
	if !ok {
		return nil, nil
	}
	return v.enrich(a), nil
}

// FindBySlug retrieves an enriched article by slug.
func (v *Articles) FindBySlug(slug string) (*models.ArticleWithDetails, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	for _, a := range v.s.articles {
		if a.Slug == slug {
			return v.enrich(a), nil
		}
	}
	return nil, nil
}

// FindRowByID retrieves the base article row without enrichment.
func (v *Articles) FindRowByID(id int64) (*models.Article, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if a, ok := v.s.articles[id]; ok {
		return &a, nil
	}
	return nil, nil
}

// List returns enriched articles, newest first, narrowed by the set filters.
func (v *Articles) List(f models.ArticleFilters) ([]models.ArticleWithDetails, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var items []models.ArticleWithDetails
	for _, a := range v.s.articles {
		if !matchArticle(a, f) {
			continue
		}
		if enriched := v.enrich(a); enriched != nil {
			items = append(items, *enriched)
		}
	}
	newerFirst(items,
		func(a models.ArticleWithDetails) time.Time { return a.CreatedAt },
		func(a models.ArticleWithDetails) int64 { return a.ID },
	)
	return items, nil
}

// Create inserts a new article.
func (v *Articles) Create(a *models.Article) (*models.Article, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for _, existing := range v.s.articles {
		if existing.Slug == a.Slug {
			return nil, fmt.Errorf("create article: %w", store.ErrConflict)
		}
	}

	created := *a
	created.ID = v.s.nextID("articles")
	now := time.Now()
	created.CreatedAt = now
	created.UpdatedAt = now
	if created.Status == models.StatusPublished && created.PublishedAt == nil {
		created.PublishedAt = &now
	}
	v.s.articles[created.ID] = created
	return &created, nil
}

// Update modifies an existing article. Returns nil if the id does not exist.
func (v *Articles) Update(a *models.Article) (*models.Article, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	current, ok := v.s.articles[a.ID]
	if !ok {
		return nil, nil
	}
	for _, existing := range v.s.articles {
		if existing.ID != a.ID && existing.Slug == a.Slug {
			return nil, fmt.Errorf("update article: %w", store.ErrConflict)
		}
	}

	updated := *a
	updated.CreatedAt = current.CreatedAt
	updated.ViewCount = current.ViewCount
	updated.UpdatedAt = time.Now()
	if updated.Status == models.StatusPublished && updated.PublishedAt == nil {
		now := updated.UpdatedAt
		updated.PublishedAt = &now
	}
	v.s.articles[a.ID] = updated
	return &updated, nil
}

// Delete removes an article. Reports whether a row was deleted.
func (v *Articles) Delete(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.articles[id]; !ok {
		return false, nil
	}
	delete(v.s.articles, id)
	return true, nil
}
