package memstore

import (
	"time"

	"gazete/internal/models"
)

// Comments returns the comment view.
func (s *Store) Comments() *Comments { return &Comments{s} }

// Comments is the in-memory counterpart of the SQL comment store.
type Comments struct {
	s *Store
}

func matchComment(c models.Comment, f models.CommentFilters) bool {
	if f.Status != nil && c.Status != *f.Status {
		return false
	}
	if f.NewsID != nil && c.NewsID != *f.NewsID {
		return false
	}
	return true
}

// List returns comments newest first, narrowed by the set filters.
func (v *Comments) List(f models.CommentFilters) ([]models.Comment, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var items []models.Comment
	for _, c := range v.s.comments {
		if matchComment(c, f) {
			items = append(items, c)
		}
	}
	newerFirst(items,
		func(c models.Comment) time.Time { return c.CreatedAt },
		func(c models.Comment) int64 { return c.ID },
	)
	return items, nil
}

// FindByID retrieves a comment by ID. Returns nil if not found.
func (v *Comments) FindByID(id int64) (*models.Comment, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if c, ok := v.s.comments[id]; ok {
		return &c, nil
	}
	return nil, nil
}

// Create inserts a new comment and returns it.
func (v *Comments) Create(c *models.Comment) (*models.Comment, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	created := *c
	created.ID = v.s.nextID("comments")
	created.CreatedAt = time.Now()
	v.s.comments[created.ID] = created
	return &created, nil
}

// Update modifies an existing comment. The news reference and creation
// time are immutable. Returns nil if the id does not exist.
func (v *Comments) Update(c *models.Comment) (*models.Comment, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	current, ok := v.s.comments[c.ID]
	if !ok {
		return nil, nil
	}
	updated := *c
	updated.NewsID = current.NewsID
	updated.CreatedAt = current.CreatedAt
	v.s.comments[c.ID] = updated
	return &updated, nil
}

// Delete removes a comment by ID. Reports whether a row was deleted.
func (v *Comments) Delete(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.comments[id]; !ok {
		return false, nil
	}
	delete(v.s.comments, id)
	return true, nil
}
