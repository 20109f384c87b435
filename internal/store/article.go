package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gazete/internal/models"
)

// ArticleStore handles editorial articles. Articles share the enrichment
// and filter semantics of news but live in their own table without
// city/source tagging.
type ArticleStore struct {
	db *sql.DB
}

// NewArticleStore creates a new ArticleStore with the given database connection.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

const articleColumns = `id, title, slug, summary, content, featured_image,
	status, author_id, editor_id, category_id, view_count,
	published_at, scheduled_at, meta_title, meta_description, keywords, created_at, updated_at`

const articleDetailColumns = `a.id, a.title, a.slug, a.summary, a.content, a.featured_image,
	a.status, a.author_id, a.editor_id, a.category_id, a.view_count,
	a.published_at, a.scheduled_at, a.meta_title, a.meta_description, a.keywords, a.created_at, a.updated_at,
	u.id, u.first_name, u.last_name, u.username,
	c.id, c.name, c.slug`

const articleDetailFrom = ` FROM articles a
	JOIN users u ON u.id = a.author_id
	JOIN categories c ON c.id = a.category_id`

func scanArticle(scanner interface{ Scan(...any) error }) (*models.Article, error) {
	var a models.Article
	err := scanner.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Summary, &a.Content, &a.FeaturedImage,
		&a.Status, &a.AuthorID, &a.EditorID, &a.CategoryID, &a.ViewCount,
		&a.PublishedAt, &a.ScheduledAt, &a.MetaTitle, &a.MetaDescription, &a.Keywords,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanArticleDetail(scanner interface{ Scan(...any) error }) (*models.ArticleWithDetails, error) {
	var a models.ArticleWithDetails
	err := scanner.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Summary, &a.Content, &a.FeaturedImage,
		&a.Status, &a.AuthorID, &a.EditorID, &a.CategoryID, &a.ViewCount,
		&a.PublishedAt, &a.ScheduledAt, &a.MetaTitle, &a.MetaDescription, &a.Keywords,
		&a.CreatedAt, &a.UpdatedAt,
		&a.Author.ID, &a.Author.FirstName, &a.Author.LastName, &a.Author.Username,
		&a.Category.ID, &a.Category.Name, &a.Category.Slug,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByID retrieves an enriched article by ID. Returns nil if the row
// does not exist or its author/category reference dangles.
func (s *ArticleStore) FindByID(id int64) (*models.ArticleWithDetails, error) {
	row := s.db.QueryRow(`SELECT `+articleDetailColumns+articleDetailFrom+` WHERE a.id = $1`, id)
	a, err := scanArticleDetail(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by id: %w", err)
	}
	return a, nil
}

// FindBySlug retrieves an enriched article by slug.
func (s *ArticleStore) FindBySlug(slug string) (*models.ArticleWithDetails, error) {
	row := s.db.QueryRow(`SELECT `+articleDetailColumns+articleDetailFrom+` WHERE a.slug = $1`, slug)
	a, err := scanArticleDetail(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by slug: %w", err)
	}
	return a, nil
}

// FindRowByID retrieves the base article row without joins.
func (s *ArticleStore) FindRowByID(id int64) (*models.Article, error) {
	row := s.db.QueryRow(`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article row by id: %w", err)
	}
	return a, nil
}

// List returns enriched articles, newest first, narrowed by the set filters.
func (s *ArticleStore) List(f models.ArticleFilters) ([]models.ArticleWithDetails, error) {
	query := `SELECT ` + articleDetailColumns + articleDetailFrom
	var (
		conds []string
		args  []any
	)
	if f.Status != nil {
		args = append(args, *f.Status)
		conds = append(conds, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		conds = append(conds, fmt.Sprintf("a.category_id = $%d", len(args)))
	}
	if f.AuthorID != nil {
		args = append(args, *f.AuthorID)
		conds = append(conds, fmt.Sprintf("a.author_id = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY a.created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var items []models.ArticleWithDetails
	for rows.Next() {
		a, err := scanArticleDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// Create inserts a new article and returns it with the generated ID.
func (s *ArticleStore) Create(a *models.Article) (*models.Article, error) {
	if a.Status == models.StatusPublished && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}

	row := s.db.QueryRow(`
		INSERT INTO articles (title, slug, summary, content, featured_image,
			status, author_id, editor_id, category_id,
			published_at, scheduled_at, meta_title, meta_description, keywords)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+articleColumns,
		a.Title, a.Slug, a.Summary, a.Content, a.FeaturedImage,
		a.Status, a.AuthorID, a.EditorID, a.CategoryID,
		a.PublishedAt, a.ScheduledAt, a.MetaTitle, a.MetaDescription, a.Keywords,
	)
	created, err := scanArticle(row)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return created, nil
}

// Update modifies an existing article. Returns the updated row, or nil if
// the id does not exist.
func (s *ArticleStore) Update(a *models.Article) (*models.Article, error) {
	if a.Status == models.StatusPublished && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}

	row := s.db.QueryRow(`
		UPDATE articles SET
			title = $1, slug = $2, summary = $3, content = $4, featured_image = $5,
			status = $6, author_id = $7, editor_id = $8, category_id = $9,
			published_at = $10, scheduled_at = $11,
			meta_title = $12, meta_description = $13, keywords = $14,
			updated_at = NOW()
		WHERE id = $15
		RETURNING `+articleColumns,
		a.Title, a.Slug, a.Summary, a.Content, a.FeaturedImage,
		a.Status, a.AuthorID, a.EditorID, a.CategoryID,
		a.PublishedAt, a.ScheduledAt, a.MetaTitle, a.MetaDescription, a.Keywords, a.ID,
	)
	updated, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return updated, nil
}

// Delete removes an article by ID. Reports whether a row was deleted.
func (s *ArticleStore) Delete(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete article: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
