package store

import (
	"database/sql"
	"fmt"

	"gazete/internal/models"
)

// SourceStore manages external news sources.
type SourceStore struct {
	db *sql.DB
}

// NewSourceStore returns a new SourceStore.
func NewSourceStore(db *sql.DB) *SourceStore {
	return &SourceStore{db: db}
}

const sourceColumns = `id, name, slug, type, is_active, contact_email, contact_phone, website, created_at`

func scanSource(scanner interface{ Scan(...any) error }) (*models.Source, error) {
	var src models.Source
	err := scanner.Scan(
		&src.ID, &src.Name, &src.Slug, &src.Type, &src.IsActive,
		&src.ContactEmail, &src.ContactPhone, &src.Website, &src.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &src, nil
}

// List returns all sources ordered by name.
func (s *SourceStore) List() ([]models.Source, error) {
	rows, err := s.db.Query(`SELECT ` + sourceColumns + ` FROM sources ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	defer rows.Close()

	var items []models.Source
	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		items = append(items, *src)
	}
	return items, rows.Err()
}

// FindByID retrieves a source by ID. Returns nil if not found.
func (s *SourceStore) FindByID(id int64) (*models.Source, error) {
	row := s.db.QueryRow(`SELECT `+sourceColumns+` FROM sources WHERE id = $1`, id)
	src, err := scanSource(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find source by id: %w", err)
	}
	return src, nil
}

// Create inserts a new source and returns it.
func (s *SourceStore) Create(src *models.Source) (*models.Source, error) {
	row := s.db.QueryRow(`
		INSERT INTO sources (name, slug, type, is_active, contact_email, contact_phone, website)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+sourceColumns,
		src.Name, src.Slug, src.Type, src.IsActive, src.ContactEmail, src.ContactPhone, src.Website,
	)
	created, err := scanSource(row)
	if err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}
	return created, nil
}

// Update modifies an existing source. Returns nil if the id does not exist.
func (s *SourceStore) Update(src *models.Source) (*models.Source, error) {
	row := s.db.QueryRow(`
		UPDATE sources SET
			name = $1, slug = $2, type = $3, is_active = $4,
			contact_email = $5, contact_phone = $6, website = $7
		WHERE id = $8
		RETURNING `+sourceColumns,
		src.Name, src.Slug, src.Type, src.IsActive,
		src.ContactEmail, src.ContactPhone, src.Website, src.ID,
	)
	updated, err := scanSource(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update source: %w", err)
	}
	return updated, nil
}

// Delete removes a source by ID. Reports whether a row was deleted.
func (s *SourceStore) Delete(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM sources WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete source: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
