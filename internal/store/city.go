package store

import (
	"database/sql"
	"fmt"

	"gazete/internal/models"
)

// CityStore manages the city taxonomy.
type CityStore struct {
	db *sql.DB
}

// NewCityStore returns a new CityStore.
func NewCityStore(db *sql.DB) *CityStore {
	return &CityStore{db: db}
}

const cityColumns = `id, name, slug, code`

func scanCity(scanner interface{ Scan(...any) error }) (*models.City, error) {
	var c models.City
	if err := scanner.Scan(&c.ID, &c.Name, &c.Slug, &c.Code); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all cities ordered by name.
func (s *CityStore) List() ([]models.City, error) {
	rows, err := s.db.Query(`SELECT ` + cityColumns + ` FROM cities ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	var items []models.City
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a city by ID. Returns nil if not found.
func (s *CityStore) FindByID(id int64) (*models.City, error) {
	row := s.db.QueryRow(`SELECT `+cityColumns+` FROM cities WHERE id = $1`, id)
	c, err := scanCity(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find city by id: %w", err)
	}
	return c, nil
}

// Create inserts a new city and returns it.
func (s *CityStore) Create(c *models.City) (*models.City, error) {
	row := s.db.QueryRow(`
		INSERT INTO cities (name, slug, code) VALUES ($1, $2, $3)
		RETURNING `+cityColumns,
		c.Name, c.Slug, c.Code,
	)
	created, err := scanCity(row)
	if err != nil {
		return nil, fmt.Errorf("create city: %w", err)
	}
	return created, nil
}

// Update modifies an existing city. Returns nil if the id does not exist.
func (s *CityStore) Update(c *models.City) (*models.City, error) {
	row := s.db.QueryRow(`
		UPDATE cities SET name = $1, slug = $2, code = $3 WHERE id = $4
		RETURNING `+cityColumns,
		c.Name, c.Slug, c.Code, c.ID,
	)
	updated, err := scanCity(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update city: %w", err)
	}
	return updated, nil
}

// Delete removes a city by ID. Reports whether a row was deleted.
func (s *CityStore) Delete(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete city: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
