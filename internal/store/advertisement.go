package store

import (
	"database/sql"
	"fmt"
	"strings"

	"gazete/internal/models"
)

// AdStore handles display advertisements and their counters.
type AdStore struct {
	db *sql.DB
}

// NewAdStore returns a new AdStore.
func NewAdStore(db *sql.DB) *AdStore {
	return &AdStore{db: db}
}

const adColumns = `id, title, image_url, link_url, position, size, is_active,
	start_date, end_date, click_count, impressions, priority, created_by, created_at`

func scanAd(scanner interface{ Scan(...any) error }) (*models.Advertisement, error) {
	var a models.Advertisement
	err := scanner.Scan(
		&a.ID, &a.Title, &a.ImageURL, &a.LinkURL, &a.Position, &a.Size, &a.IsActive,
		&a.StartDate, &a.EndDate, &a.ClickCount, &a.Impressions, &a.Priority,
		&a.CreatedBy, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns advertisements ordered by priority then creation date,
// narrowed by the set filters.
func (s *AdStore) List(f models.AdFilters) ([]models.Advertisement, error) {
	query := `SELECT ` + adColumns + ` FROM advertisements`
	var (
		conds []string
		args  []any
	)
	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if f.Position != nil {
		args = append(args, *f.Position)
		conds = append(conds, fmt.Sprintf("position = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY priority DESC, created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list advertisements: %w", err)
	}
	defer rows.Close()

	var items []models.Advertisement
	for rows.Next() {
		a, err := scanAd(rows)
		if err != nil {
			return nil, fmt.Errorf("scan advertisement: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// FindByID retrieves an advertisement by ID. Returns nil if not found.
func (s *AdStore) FindByID(id int64) (*models.Advertisement, error) {
	row := s.db.QueryRow(`SELECT `+adColumns+` FROM advertisements WHERE id = $1`, id)
	a, err := scanAd(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find advertisement by id: %w", err)
	}
	return a, nil
}

// Create inserts a new advertisement and returns it.
func (s *AdStore) Create(a *models.Advertisement) (*models.Advertisement, error) {
	row := s.db.QueryRow(`
		INSERT INTO advertisements (title, image_url, link_url, position, size,
			is_active, start_date, end_date, priority, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+adColumns,
		a.Title, a.ImageURL, a.LinkURL, a.Position, a.Size,
		a.IsActive, a.StartDate, a.EndDate, a.Priority, a.CreatedBy,
	)
	created, err := scanAd(row)
	if err != nil {
		return nil, fmt.Errorf("create advertisement: %w", err)
	}
	return created, nil
}

// Update modifies an existing advertisement. Counters are not writable
// here; they only move through the increment methods. Returns nil if the
// id does not exist.
func (s *AdStore) Update(a *models.Advertisement) (*models.Advertisement, error) {
	row := s.db.QueryRow(`
		UPDATE advertisements SET
			title = $1, image_url = $2, link_url = $3, position = $4, size = $5,
			is_active = $6, start_date = $7, end_date = $8, priority = $9
		WHERE id = $10
		RETURNING `+adColumns,
		a.Title, a.ImageURL, a.LinkURL, a.Position, a.Size,
		a.IsActive, a.StartDate, a.EndDate, a.Priority, a.ID,
	)
	updated, err := scanAd(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update advertisement: %w", err)
	}
	return updated, nil
}

// Delete removes an advertisement by ID. Reports whether a row was deleted.
func (s *AdStore) Delete(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM advertisements WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete advertisement: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// IncrementClicks bumps the click counter atomically in the database.
func (s *AdStore) IncrementClicks(id int64) (bool, error) {
	res, err := s.db.Exec(`UPDATE advertisements SET click_count = click_count + 1 WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("increment ad clicks: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// IncrementImpressions bumps the impression counter atomically.
func (s *AdStore) IncrementImpressions(id int64) (bool, error) {
	res, err := s.db.Exec(`UPDATE advertisements SET impressions = impressions + 1 WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("increment ad impressions: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
