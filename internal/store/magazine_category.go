package store

import (
	"database/sql"
	"fmt"

	"gazete/internal/models"
)

// MagazineCategoryStore manages the magazine category taxonomy.
type MagazineCategoryStore struct {
	db *sql.DB
}

// NewMagazineCategoryStore returns a new MagazineCategoryStore.
func NewMagazineCategoryStore(db *sql.DB) *MagazineCategoryStore {
	return &MagazineCategoryStore{db: db}
}

const magazineCategoryColumns = `id, name, slug, description, parent_id, created_at`

func scanMagazineCategory(scanner interface{ Scan(...any) error }) (*models.MagazineCategory, error) {
	var c models.MagazineCategory
	err := scanner.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ParentID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all magazine categories ordered by name.
func (s *MagazineCategoryStore) List() ([]models.MagazineCategory, error) {
	rows, err := s.db.Query(`SELECT ` + magazineCategoryColumns + ` FROM magazine_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list magazine categories: %w", err)
	}
	defer rows.Close()

	var items []models.MagazineCategory
	for rows.Next() {
		c, err := scanMagazineCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan magazine category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a magazine category by ID. Returns nil if not found.
func (s *MagazineCategoryStore) FindByID(id int64) (*models.MagazineCategory, error) {
	row := s.db.QueryRow(`SELECT `+magazineCategoryColumns+` FROM magazine_categories WHERE id = $1`, id)
	c, err := scanMagazineCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find magazine category by id: %w", err)
	}
	return c, nil
}

// Create inserts a new magazine category and returns it.
func (s *MagazineCategoryStore) Create(c *models.MagazineCategory) (*models.MagazineCategory, error) {
	row := s.db.QueryRow(`
		INSERT INTO magazine_categories (name, slug, description, parent_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+magazineCategoryColumns,
		c.Name, c.Slug, c.Description, c.ParentID,
	)
	created, err := scanMagazineCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create magazine category: %w", err)
	}
	return created, nil
}

// Update modifies an existing magazine category. Returns nil if the id
// does not exist.
func (s *MagazineCategoryStore) Update(c *models.MagazineCategory) (*models.MagazineCategory, error) {
	row := s.db.QueryRow(`
		UPDATE magazine_categories SET name = $1, slug = $2, description = $3, parent_id = $4
		WHERE id = $5
		RETURNING `+magazineCategoryColumns,
		c.Name, c.Slug, c.Description, c.ParentID, c.ID,
	)
	updated, err := scanMagazineCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update magazine category: %w", err)
	}
	return updated, nil
}

// Delete removes a magazine category by ID. Reports whether a row was deleted.
func (s *MagazineCategoryStore) Delete(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM magazine_categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete magazine category: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
