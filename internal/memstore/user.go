package memstore

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gazete/internal/models"
	"gazete/internal/store"
)

// Users returns the user view.
func (s *Store) Users() *Users { return &Users{s} }

// Users is the in-memory counterpart of the SQL user store.
type Users struct {
	s *Store
}

// FindByID retrieves a user by ID. Returns nil if not found.
func (v *Users) FindByID(id int64) (*models.User, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if u, ok := v.s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

// FindByUsername retrieves a user by username. Returns nil if not found.
func (v *Users) FindByUsername(username string) (*models.User, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	for _, u := range v.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

// List returns all users, newest first.
func (v *Users) List() ([]models.User, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	items := make([]models.User, 0, len(v.s.users))
	for _, u := range v.s.users {
		items = append(items, u)
	}
	newerFirst(items,
		func(u models.User) time.Time { return u.CreatedAt },
		func(u models.User) int64 { return u.ID },
	)
	return items, nil
}

// Create inserts a new user with a bcrypt-hashed password.
func (v *Users) Create(u *models.User, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for _, existing := range v.s.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return nil, fmt.Errorf("create user: %w", store.ErrConflict)
		}
	}

	created := *u
	created.ID = v.s.nextID("users")
	created.PasswordHash = string(hash)
	created.CreatedAt = time.Now()
	v.s.users[created.ID] = created
	return &created, nil
}

// Update modifies an existing user's profile fields. Returns nil if the
// id does not exist.
func (v *Users) Update(u *models.User) (*models.User, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	current, ok := v.s.users[u.ID]
	if !ok {
		return nil, nil
	}
	for _, existing := range v.s.users {
		if existing.ID != u.ID && (existing.Username == u.Username || existing.Email == u.Email) {
			return nil, fmt.Errorf("update user: %w", store.ErrConflict)
		}
	}
	current.Username = u.Username
	current.Email = u.Email
	current.FirstName = u.FirstName
	current.LastName = u.LastName
	current.Role = u.Role
	current.IsActive = u.IsActive
	v.s.users[u.ID] = current
	return &current, nil
}

// SetPassword replaces a user's password hash.
func (v *Users) SetPassword(id int64, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	u, ok := v.s.users[id]
	if !ok {
		return nil
	}
	u.PasswordHash = string(hash)
	v.s.users[id] = u
	return nil
}

// Delete removes a user by ID. Reports whether a row was deleted.
func (v *Users) Delete(id int64) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.users[id]; !ok {
		return false, nil
	}
	delete(v.s.users, id)
	return true, nil
}
