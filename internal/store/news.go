package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gazete/internal/models"
)

// NewsStore handles all news-related database operations. Enriched reads
// join the author and category rows; news whose author or category has
// been deleted are excluded from those results.
type NewsStore struct {
	db *sql.DB
}

// NewNewsStore creates a new NewsStore with the given database connection.
func NewNewsStore(db *sql.DB) *NewsStore {
	return &NewsStore{db: db}
}

const newsColumns = `id, title, slug, summary, content, featured_image, featured_video,
	status, author_id, editor_id, category_id, city_id, source_id, view_count,
	published_at, scheduled_at, meta_title, meta_description, keywords, created_at, updated_at`

// newsDetailColumns prefixes the news columns and appends the projected
// author and category fields for enriched queries.
const newsDetailColumns = `n.id, n.title, n.slug, n.summary, n.content, n.featured_image, n.featured_video,
	n.status, n.author_id, n.editor_id, n.category_id, n.city_id, n.source_id, n.view_count,
	n.published_at, n.scheduled_at, n.meta_title, n.meta_description, n.keywords, n.created_at, n.updated_at,
	u.id, u.first_name, u.last_name, u.username,
	c.id, c.name, c.slug`

// scanNews scans a base news row.
func scanNews(scanner interface{ Scan(...any) error }) (*models.News, error) {
	var n models.News
	err := scanner.Scan(
		&n.ID, &n.Title, &n.Slug, &n.Summary, &n.Content, &n.FeaturedImage, &n.FeaturedVideo,
		&n.Status, &n.AuthorID, &n.EditorID, &n.CategoryID, &n.CityID, &n.SourceID, &n.ViewCount,
		&n.PublishedAt, &n.ScheduledAt, &n.MetaTitle, &n.MetaDescription, &n.Keywords,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// scanNewsDetail scans an enriched news row including the joined author
// and category projections.
func scanNewsDetail(scanner interface{ Scan(...any) error }) (*models.NewsWithDetails, error) {
	var n models.NewsWithDetails
	err := scanner.Scan(
		&n.ID, &n.Title, &n.Slug, &n.Summary, &n.Content, &n.FeaturedImage, &n.FeaturedVideo,
		&n.Status, &n.AuthorID, &n.EditorID, &n.CategoryID, &n.CityID, &n.SourceID, &n.ViewCount,
		&n.PublishedAt, &n.ScheduledAt, &n.MetaTitle, &n.MetaDescription, &n.Keywords,
		&n.CreatedAt, &n.UpdatedAt,
		&n.Author.ID, &n.Author.FirstName, &n.Author.LastName, &n.Author.Username,
		&n.Category.ID, &n.Category.Name, &n.Category.Slug,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

const newsDetailFrom = ` FROM news n
	JOIN users u ON u.id = n.author_id
	JOIN categories c ON c.id = n.category_id`

// FindByID retrieves an enriched news item by ID. Returns nil if the row
// does not exist or its author/category reference dangles.
func (s *NewsStore) FindByID(id int64) (*models.NewsWithDetails, error) {
	row := s.db.QueryRow(`SELECT `+newsDetailColumns+newsDetailFrom+` WHERE n.id = $1`, id)
	n, err := scanNewsDetail(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find news by id: %w", err)
	}
	return n, nil
}

// FindBySlug retrieves an enriched news item by slug. Returns nil if not
// found or unresolvable.
func (s *NewsStore) FindBySlug(slug string) (*models.NewsWithDetails, error) {
	row := s.db.QueryRow(`SELECT `+newsDetailColumns+newsDetailFrom+` WHERE n.slug = $1`, slug)
	n, err := scanNewsDetail(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find news by slug: %w", err)
	}
	return n, nil
}

// FindRowByID retrieves the base news row without joins. Used by update
// flows, which must reach rows even when their references dangle.
func (s *NewsStore) FindRowByID(id int64) (*models.News, error) {
	row := s.db.QueryRow(`SELECT `+newsColumns+` FROM news WHERE id = $1`, id)
	n, err := scanNews(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find news row by id: %w", err)
	}
	return n, nil
}

// List returns enriched news, newest first. Each set filter narrows the
// result; absent filters impose no constraint.
func (s *NewsStore) List(f models.NewsFilters) ([]models.NewsWithDetails, error) {
	query := `SELECT ` + newsDetailColumns + newsDetailFrom
	var (
		conds []string
		args  []any
	)
	if f.Status != nil {
		args = append(args, *f.Status)
		conds = append(conds, fmt.Sprintf("n.status = $%d", len(args)))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		conds = append(conds, fmt.Sprintf("n.category_id = $%d", len(args)))
	}
	if f.AuthorID != nil {
		args = append(args, *f.AuthorID)
		conds = append(conds, fmt.Sprintf("n.author_id = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY n.created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer rows.Close()

	var items []models.NewsWithDetails
	for rows.Next() {
		n, err := scanNewsDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan news: %w", err)
		}
		items = append(items, *n)
	}
	return items, rows.Err()
}

// Create inserts a new news item and returns it with the generated ID.
func (s *NewsStore) Create(n *models.News) (*models.News, error) {
	if n.Status == models.StatusPublished && n.PublishedAt == nil {
		now := time.Now()
		n.PublishedAt = &now
	}

	row := s.db.QueryRow(`
		INSERT INTO news (title, slug, summary, content, featured_image, featured_video,
			status, author_id, editor_id, category_id, city_id, source_id,
			published_at, scheduled_at, meta_title, meta_description, keywords)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING `+newsColumns,
		n.Title, n.Slug, n.Summary, n.Content, n.FeaturedImage, n.FeaturedVideo,
		n.Status, n.AuthorID, n.EditorID, n.CategoryID, n.CityID, n.SourceID,
		n.PublishedAt, n.ScheduledAt, n.MetaTitle, n.MetaDescription, n.Keywords,
	)
	created, err := scanNews(row)
	if err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	return created, nil
}

// Update modifies an existing news item. Returns the updated row, or nil
// if the id does not exist.
func (s *NewsStore) Update(n *models.News) (*models.News, error) {
	if n.Status == models.StatusPublished && n.PublishedAt == nil {
		now := time.Now()
		n.PublishedAt = &now
	}

	row := s.db.QueryRow(`
		UPDATE news SET
			title = $1, slug = $2, summary = $3, content = $4,
			featured_image = $5, featured_video = $6, status = $7,
			author_id = $8, editor_id = $9, category_id = $10, city_id = $11, source_id = $12,
			published_at = $13, scheduled_at = $14,
			meta_title = $15, meta_description = $16, keywords = $17,
			updated_at = NOW()
		WHERE id = $18
		RETURNING `+newsColumns,
		n.Title, n.Slug, n.Summary, n.Content, n.FeaturedImage, n.FeaturedVideo,
		n.Status, n.AuthorID, n.EditorID, n.CategoryID, n.CityID, n.SourceID,
		n.PublishedAt, n.ScheduledAt, n.MetaTitle, n.MetaDescription, n.Keywords, n.ID,
	)
	updated, err := scanNews(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	return updated, nil
}

// Delete removes a news item by ID. Reports whether a row was deleted.
func (s *NewsStore) Delete(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete news: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// IncrementViews bumps the view counter in place. The increment happens
// inside the UPDATE statement so concurrent views are never lost to a
// read-modify-write race. Reports whether the row exists.
func (s *NewsStore) IncrementViews(id int64) (bool, error) {
	res, err := s.db.Exec(`UPDATE news SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("increment news views: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
