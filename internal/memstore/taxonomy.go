package memstore

import (
	"fmt"
	"sort"
	"time"

	"gazete/internal/models"
	"gazete/internal/store"
)

// Categories returns the news category view.
func (s *Store) Categories() *Categories { return &Categories{s} }

// Categories is the in-memory counterpart of the SQL category store.
type Categories struct {
	s *Store
}

// List returns root categories with their direct children attached and
// news counts computed, mirroring the SQL grouped count + bucketing.
func (v *Categories) List() ([]models.Category, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()

	counts := make(map[int64]int)
	for _, n := range v.s.news {
		counts[n.CategoryID]++
	}

	flat := make([]models.Category, 0, len(v.s.categories))
	for _, c := range v.s.categories {
		c.NewsCount = counts[c.ID]
		flat = append(flat, c)
	}
	sort.Slice(flat, func(i, j int) bool { return flat[i].Name < flat[j].Name })

	children := make(map[int64][]models.Category)
	for _, c := range flat {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}
	var roots []models.Category
	for _, c := range flat {
		if c.ParentID == nil {
			c.Children = children[c.ID]
			roots = append(roots, c)
		}
	}
	return roots, nil
}

// FindByID retrieves a category by ID. Returns nil if not found.
func (v *Categories) FindByID(id int64) (*models.Category, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if c, ok := v.s.categories[id]; ok {
		return &c, nil
	}
	return nil, nil
}

// FindBySlug retrieves a category by slug. Returns nil if not found.
func (v *Categories) FindBySlug(slug string) (*models.Category, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	for _, c := range v.s.categories {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, nil
}

// Create inserts a new category.
func (v *Categories) Create(c *models.Category) (*models.Category, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for _, existing := range v.s.categories {
		if existing.Slug == c.Slug {
			return nil, fmt.Errorf("create category: %w", store.ErrConflict)
		}
	}
	created := *c
	created.ID = v.s.nextID("categories")
	created.CreatedAt = time.Now()
	created.Children = nil
	v.s.categories[created.ID] = created
	return &created, nil
}

// Update modifies an existing category. Returns nil if the id does not exist.
func (v *Categories) Update(c *models.Category) (*models.Category, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	current, ok := v.s.categories[c.ID]
	if !ok {
		return nil, nil
	}
	for _, existing := range v.s.categories {
		if existing.ID != c.ID && existing.Slug == c.Slug {
			return nil, fmt.Errorf("update category: %w", store.ErrConflict)
		}
	}
	current.Name = c.Name
	current.Slug = c.Slug
	current.Description = c.Description
	current.ParentID = c.ParentID
	v.s.categories[c.ID] = current
	return &current, nil
}

// Delete removes a category. Dependent news keep their dangling reference.
func (v *Categories) Delete(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.categories[id]; !ok {
		return false, nil
	}
	delete(v.s.categories, id)
	return true, nil
}

// Cities returns the city view.
func (s *Store) Cities() *Cities { return &Cities{s} }

// Cities is the in-memory counterpart of the SQL city store.
type Cities struct {
	s *Store
}

// List returns all cities ordered by name.
func (v *Cities) List() ([]models.City, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	items := make([]models.City, 0, len(v.s.cities))
	for _, c := range v.s.cities {
		items = append(items, c)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// FindByID retrieves a city by ID. Returns nil if not found.
func (v *Cities) FindByID(id int64) (*models.City, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if c, ok := v.s.cities[id]; ok {
		return &c, nil
	}
	return nil, nil
}

// Create inserts a new city.
func (v *Cities) Create(c *models.City) (*models.City, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for _, existing := range v.s.cities {
		if existing.Slug == c.Slug {
			return nil, fmt.Errorf("create city: %w", store.ErrConflict)
		}
	}
	created := *c
	created.ID = v.s.nextID("cities")
	v.s.cities[created.ID] = created
	return &created, nil
}

// Update modifies an existing city. Returns nil if the id does not exist.
func (v *Cities) Update(c *models.City) (*models.City, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.cities[c.ID]; !ok {
		return nil, nil
	}
	v.s.cities[c.ID] = *c
	return c, nil
}

// Delete removes a city by ID.
func (v *Cities) Delete(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.cities[id]; !ok {
		return false, nil
	}
	delete(v.s.cities, id)
	return true, nil
}

// Sources returns the news source view.
func (s *Store) Sources() *Sources { return &Sources{s} }

// Sources is the in-memory counterpart of the SQL source store.
type Sources struct {
	s *Store
}

// List returns all sources ordered by name.
func (v *Sources) List() ([]models.Source, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	items := make([]models.Source, 0, len(v.s.sources))
	for _, src := range v.s.sources {
		items = append(items, src)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// FindByID retrieves a source by ID. Returns nil if not found.
func (v *Sources) FindByID(id int64) (*models.Source, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if src, ok := v.s.sources[id]; ok {
		return &src, nil
	}
	return nil, nil
}

// Create inserts a new source.
func (v *Sources) Create(src *models.Source) (*models.Source, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for _, existing := range v.s.sources {
		if existing.Slug == src.Slug {
			return nil, fmt.Errorf("create source: %w", store.ErrConflict)
		}
	}
	created := *src
	created.ID = v.s.nextID("sources")
	created.CreatedAt = time.Now()
	v.s.sources[created.ID] = created
	return &created, nil
}

// Update modifies an existing source. Returns nil if the id does not exist.
func (v *Sources) Update(src *models.Source) (*models.Source, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	current, ok := v.s.sources[src.ID]
	if !ok {
		return nil, nil
	}
	current.Name = src.Name
	current.Slug = src.Slug
	current.Type = src.Type
	current.IsActive = src.IsActive
	current.ContactEmail = src.ContactEmail
	current.ContactPhone = src.ContactPhone
	current.Website = src.Website
	v.s.sources[src.ID] = current
	return &current, nil
}

// Delete removes a source by ID.
func (v *Sources) Delete(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.sources[id]; !ok {
		return false, nil
	}
	delete(v.s.sources, id)
	return true, nil
}
