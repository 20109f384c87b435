package memstore

import (
	"time"

	"gazete/internal/models"
)

// Classifieds returns the classified ad view.
func (s *Store) Classifieds() *Classifieds { return &Classifieds{s} }

// Classifieds is the in-memory counterpart of the SQL classified store,
// including the moderation workflow.
type Classifieds struct {
	s *Store
}

func matchClassified(c models.ClassifiedAd, f models.ClassifiedFilters) bool {
	if f.Status != nil && c.Status != *f.Status {
		return false
	}
	if f.Category != nil && c.Category != *f.Category {
		return false
	}
	if f.IsPremium != nil && c.IsPremium != *f.IsPremium {
		return false
	}
	return true
}

// cloneImages copies the image list so callers cannot mutate stored
// state, normalizing nil to an empty slice like the JSONB column does.
func cloneImages(images []string) []string {
	out := make([]string, len(images))
	copy(out, images)
	return out
}

// List returns classified ads newest first, narrowed by the set filters.
func (v *Classifieds) List(f models.ClassifiedFilters) ([]models.ClassifiedAd, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var items []models.ClassifiedAd
	for _, c := range v.s.classifieds {
		if matchClassified(c, f) {
			c.Images = cloneImages(c.Images)
			items = append(items, c)
		}
	}
	newerFirst(items,
		func(c models.ClassifiedAd) time.Time { return c.CreatedAt },
		func(c models.ClassifiedAd) int64 { return c.ID },
	)
	return items, nil
}

// FindByID retrieves a classified ad by ID. Returns nil if not found.
func (v *Classifieds) FindByID(id int64) (*models.ClassifiedAd, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	c, ok := v.s.classifieds[id]
	if !ok {
		return nil, nil
	}
	c.Images = cloneImages(c.Images)
	return &c, nil
}

// Create inserts a new classified ad and returns it.
func (v *Classifieds) Create(c *models.ClassifiedAd) (*models.ClassifiedAd, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	created := *c
	created.ID = v.s.nextID("classified_ads")
	created.CreatedAt = time.Now()
	created.Images = cloneImages(c.Images)
	created.ViewCount = 0
	created.ApprovedBy = nil
	created.ApprovedAt = nil
	v.s.classifieds[created.ID] = created

	out := created
	out.Images = cloneImages(created.Images)
	return &out, nil
}

// Update modifies an existing classified ad. The approval fields only
// move through Approve and Reject. Returns nil if the id does not exist.
func (v *Classifieds) Update(c *models.ClassifiedAd) (*models.ClassifiedAd, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	current, ok := v.s.classifieds[c.ID]
	if !ok {
		return nil, nil
	}
	updated := *c
	updated.Images = cloneImages(c.Images)
	updated.ViewCount = current.ViewCount
	updated.ApprovedBy = current.ApprovedBy
	updated.ApprovedAt = current.ApprovedAt
	updated.CreatedAt = current.CreatedAt
	v.s.classifieds[c.ID] = updated

	out := updated
	out.Images = cloneImages(updated.Images)
	return &out, nil
}

// Delete removes a classified ad by ID. Reports whether a row was deleted.
func (v *Classifieds) Delete(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.classifieds[id]; !ok {
		return false, nil
	}
	delete(v.s.classifieds, id)
	return true, nil
}

// Approve marks a classified ad approved, recording who approved it and
// when. The three fields change together. Returns nil if the id does
// not exist.
func (v *Classifieds) Approve(id, approverID int64) (*models.ClassifiedAd, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	c, ok := v.s.classifieds[id]
	if !ok {
		return nil, nil
	}
	now := time.Now()
	c.Status = models.ClassifiedApproved
	c.ApprovedBy = &approverID
	c.ApprovedAt = &now
	v.s.classifieds[id] = c

	out := c
	out.Images = cloneImages(c.Images)
	return &out, nil
}

// Reject marks a classified ad rejected. The approval fields are left
// untouched. Returns nil if the id does not exist.
func (v *Classifieds) Reject(id int64) (*models.ClassifiedAd, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	c, ok := v.s.classifieds[id]
	if !ok {
		return nil, nil
	}
	c.Status = models.ClassifiedRejected
	v.s.classifieds[id] = c

	out := c
	out.Images = cloneImages(c.Images)
	return &out, nil
}

// IncrementViews bumps the view counter.
func (v *Classifieds) IncrementViews(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	c, ok := v.s.classifieds[id]
	if !ok {
		return false, nil
	}
	c.ViewCount++
	v.s.classifieds[id] = c
	return true, nil
}
