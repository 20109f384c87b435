package store

import (
	"database/sql"
	"fmt"
	"strings"

	"gazete/internal/models"
)

// MagazineStore handles digital magazine issues.
type MagazineStore struct {
	db *sql.DB
}

// NewMagazineStore returns a new MagazineStore.
func NewMagazineStore(db *sql.DB) *MagazineStore {
	return &MagazineStore{db: db}
}

const magazineColumns = `id, title, slug, issue_number, cover_image, file_url, category_id,
	is_published, is_featured, download_count, published_at, created_at`

func scanMagazine(scanner interface{ Scan(...any) error }) (*models.DigitalMagazine, error) {
	var m models.DigitalMagazine
	err := scanner.Scan(
		&m.ID, &m.Title, &m.Slug, &m.IssueNumber, &m.CoverImage, &m.FileURL, &m.CategoryID,
		&m.IsPublished, &m.IsFeatured, &m.DownloadCount, &m.PublishedAt, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns magazines newest first, narrowed by the set filters.
func (s *MagazineStore) List(f models.MagazineFilters) ([]models.DigitalMagazine, error) {
	query := `SELECT ` + magazineColumns + ` FROM digital_magazines`
	var (
		conds []string
		args  []any
	)
	if f.IsPublished != nil {
		args = append(args, *f.IsPublished)
		conds = append(conds, fmt.Sprintf("is_published = $%d", len(args)))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if f.IsFeatured != nil {
		args = append(args, *f.IsFeatured)
		conds = append(conds, fmt.Sprintf("is_featured = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	defer rows.Close()

	var items []models.DigitalMagazine
	for rows.Next() {
		m, err := scanMagazine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan magazine: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// FindByID retrieves a magazine by ID. Returns nil if not found.
func (s *MagazineStore) FindByID(id int64) (*models.DigitalMagazine, error) {
	row := s.db.QueryRow(`SELECT `+magazineColumns+` FROM digital_magazines WHERE id = $1`, id)
	m, err := scanMagazine(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find magazine by id: %w", err)
	}
	return m, nil
}

// Create inserts a new magazine issue and returns it.
func (s *MagazineStore) Create(m *models.DigitalMagazine) (*models.DigitalMagazine, error) {
	row := s.db.QueryRow(`
		INSERT INTO digital_magazines (title, slug, issue_number, cover_image, file_url,
			category_id, is_published, is_featured, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+magazineColumns,
		m.Title, m.Slug, m.IssueNumber, m.CoverImage, m.FileURL,
		m.CategoryID, m.IsPublished, m.IsFeatured, m.PublishedAt,
	)
	created, err := scanMagazine(row)
	if err != nil {
		return nil, fmt.Errorf("create magazine: %w", err)
	}
	return created, nil
}

// Update modifies an existing magazine issue. Returns nil if the id does
// not exist.
func (s *MagazineStore) Update(m *models.DigitalMagazine) (*models.DigitalMagazine, error) {
	row := s.db.QueryRow(`
		UPDATE digital_magazines SET
			title = $1, slug = $2, issue_number = $3, cover_image = $4, file_url = $5,
			category_id = $6, is_published = $7, is_featured = $8, published_at = $9
		WHERE id = $10
		RETURNING `+magazineColumns,
		m.Title, m.Slug, m.IssueNumber, m.CoverImage, m.FileURL,
		m.CategoryID, m.IsPublished, m.IsFeatured, m.PublishedAt, m.ID,
	)
	updated, err := scanMagazine(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update magazine: %w", err)
	}
	return updated, nil
}

// Delete removes a magazine by ID. Reports whether a row was deleted.
func (s *MagazineStore) Delete(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM digital_magazines WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete magazine: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// IncrementDownloads bumps the download counter atomically.
func (s *MagazineStore) IncrementDownloads(id int64) (bool, error) {
	res, err := s.db.Exec(`UPDATE digital_magazines SET download_count = download_count + 1 WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("increment magazine downloads: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
