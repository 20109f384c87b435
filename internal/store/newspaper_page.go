package store

import (
	"database/sql"
	"fmt"

	"gazete/internal/models"
)

// NewspaperPageStore manages scanned pages of printed editions.
type NewspaperPageStore struct {
	db *sql.DB
}

// NewNewspaperPageStore returns a new NewspaperPageStore.
func NewNewspaperPageStore(db *sql.DB) *NewspaperPageStore {
	return &NewspaperPageStore{db: db}
}

const newspaperPageColumns = `id, title, page_number, issue_date, image_url, is_published, created_at`

func scanNewspaperPage(scanner interface{ Scan(...any) error }) (*models.NewspaperPage, error) {
	var p models.NewspaperPage
	err := scanner.Scan(
		&p.ID, &p.Title, &p.PageNumber, &p.IssueDate, &p.ImageURL, &p.IsPublished, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns newspaper pages, newest issue first, page order within an issue.
func (s *NewspaperPageStore) List() ([]models.NewspaperPage, error) {
	rows, err := s.db.Query(`
		SELECT ` + newspaperPageColumns + ` FROM newspaper_pages
		ORDER BY issue_date DESC, page_number ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list newspaper pages: %w", err)
	}
	defer rows.Close()

	var items []models.NewspaperPage
	for rows.Next() {
		p, err := scanNewspaperPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan newspaper page: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a newspaper page by ID. Returns nil if not found.
func (s *NewspaperPageStore) FindByID(id int64) (*models.NewspaperPage, error) {
	row := s.db.QueryRow(`SELECT `+newspaperPageColumns+` FROM newspaper_pages WHERE id = $1`, id)
	p, err := scanNewspaperPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find newspaper page by id: %w", err)
	}
	return p, nil
}

// Create inserts a new newspaper page and returns it.
func (s *NewspaperPageStore) Create(p *models.NewspaperPage) (*models.NewspaperPage, error) {
	row := s.db.QueryRow(`
		INSERT INTO newspaper_pages (title, page_number, issue_date, image_url, is_published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+newspaperPageColumns,
		p.Title, p.PageNumber, p.IssueDate, p.ImageURL, p.IsPublished,
	)
	created, err := scanNewspaperPage(row)
	if err != nil {
		return nil, fmt.Errorf("create newspaper page: %w", err)
	}
	return created, nil
}

// Update modifies an existing newspaper page. Returns nil if the id does
// not exist.
func (s *NewspaperPageStore) Update(p *models.NewspaperPage) (*models.NewspaperPage, error) {
	row := s.db.QueryRow(`
		UPDATE newspaper_pages SET
			title = $1, page_number = $2, issue_date = $3, image_url = $4, is_published = $5
		WHERE id = $6
		RETURNING `+newspaperPageColumns,
		p.Title, p.PageNumber, p.IssueDate, p.ImageURL, p.IsPublished, p.ID,
	)
	updated, err := scanNewspaperPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update newspaper page: %w", err)
	}
	return updated, nil
}

// Delete removes a newspaper page by ID. Reports whether a row was deleted.
func (s *NewspaperPageStore) Delete(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM newspaper_pages WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete newspaper page: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
