package store

import (
	"database/sql"
	"fmt"
	"strings"

	"gazete/internal/models"
)

// CommentStore handles reader comments.
type CommentStore struct {
	db *sql.DB
}

// NewCommentStore returns a new CommentStore.
func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{db: db}
}

const commentColumns = `id, news_id, author_name, author_email, content, status, created_at`

func scanComment(scanner interface{ Scan(...any) error }) (*models.Comment, error) {
	var c models.Comment
	err := scanner.Scan(
		&c.ID, &c.NewsID, &c.AuthorName, &c.AuthorEmail, &c.Content, &c.Status, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns comments newest first, narrowed by the set filters.
func (s *CommentStore) List(f models.CommentFilters) ([]models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments`
	var (
		conds []string
		args  []any
	)
	if f.Status != nil {
		args = append(args, *f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.NewsID != nil {
		args = append(args, *f.NewsID)
		conds = append(conds, fmt.Sprintf("news_id = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var items []models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a comment by ID. Returns nil if not found.
func (s *CommentStore) FindByID(id int64) (*models.Comment, error) {
	row := s.db.QueryRow(`SELECT `+commentColumns+` FROM comments WHERE id = $1`, id)
	c, err := scanComment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find comment by id: %w", err)
	}
	return c, nil
}

// Create inserts a new comment and returns it.
func (s *CommentStore) Create(c *models.Comment) (*models.Comment, error) {
	row := s.db.QueryRow(`
		INSERT INTO comments (news_id, author_name, author_email, content, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+commentColumns,
		c.NewsID, c.AuthorName, c.AuthorEmail, c.Content, c.Status,
	)
	created, err := scanComment(row)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return created, nil
}

// Update modifies an existing comment. Returns nil if the id does not exist.
func (s *CommentStore) Update(c *models.Comment) (*models.Comment, error) {
	row := s.db.QueryRow(`
		UPDATE comments SET author_name = $1, author_email = $2, content = $3, status = $4
		WHERE id = $5
		RETURNING `+commentColumns,
		c.AuthorName, c.AuthorEmail, c.Content, c.Status, c.ID,
	)
	updated, err := scanComment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return updated, nil
}

// Delete removes a comment by ID. Reports whether a row was deleted.
func (s *CommentStore) Delete(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete comment: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
