package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"gazete/internal/models"
)

// ClassifiedStore handles reader-submitted classified ads, including the
// moderation workflow.
type ClassifiedStore struct {
	db *sql.DB
}

// NewClassifiedStore returns a new ClassifiedStore.
func NewClassifiedStore(db *sql.DB) *ClassifiedStore {
	return &ClassifiedStore{db: db}
}

const classifiedColumns = `id, title, description, category, subcategory, price, currency,
	location, contact_name, contact_phone, contact_email, images, status,
	is_premium, is_urgent, view_count, approved_by, approved_at, created_at`

// scanClassified scans a classified row, decoding the JSONB image list.
func scanClassified(scanner interface{ Scan(...any) error }) (*models.ClassifiedAd, error) {
	var (
		c      models.ClassifiedAd
		images []byte
	)
	err := scanner.Scan(
		&c.ID, &c.Title, &c.Description, &c.Category, &c.Subcategory, &c.Price, &c.Currency,
		&c.Location, &c.ContactName, &c.ContactPhone, &c.ContactEmail, &images, &c.Status,
		&c.IsPremium, &c.IsUrgent, &c.ViewCount, &c.ApprovedBy, &c.ApprovedAt, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &c.Images); err != nil {
		return nil, fmt.Errorf("decode classified images: %w", err)
	}
	return &c, nil
}

// encodeImages marshals the image URL list for the JSONB column,
// normalizing nil to an empty array.
func encodeImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	return json.Marshal(images)
}

// List returns classified ads newest first, narrowed by the set filters.
func (s *ClassifiedStore) List(f models.ClassifiedFilters) ([]models.ClassifiedAd, error) {
	query := `SELECT ` + classifiedColumns + ` FROM classified_ads`
	var (
		conds []string
		args  []any
	)
	if f.Status != nil {
		args = append(args, *f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Category != nil {
		args = append(args, *f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.IsPremium != nil {
		args = append(args, *f.IsPremium)
		conds = append(conds, fmt.Sprintf("is_premium = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list classified ads: %w", err)
	}
	defer rows.Close()

	var items []models.ClassifiedAd
	for rows.Next() {
		c, err := scanClassified(rows)
		if err != nil {
			return nil, fmt.Errorf("scan classified ad: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a classified ad by ID. Returns nil if not found.
func (s *ClassifiedStore) FindByID(id int64) (*models.ClassifiedAd, error) {
	row := s.db.QueryRow(`SELECT `+classifiedColumns+` FROM classified_ads WHERE id = $1`, id)
	c, err := scanClassified(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find classified ad by id: %w", err)
	}
	return c, nil
}

// Create inserts a new classified ad and returns it.
func (s *ClassifiedStore) Create(c *models.ClassifiedAd) (*models.ClassifiedAd, error) {
	images, err := encodeImages(c.Images)
	if err != nil {
		return nil, fmt.Errorf("encode classified images: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO classified_ads (title, description, category, subcategory, price, currency,
			location, contact_name, contact_phone, contact_email, images, status,
			is_premium, is_urgent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+classifiedColumns,
		c.Title, c.Description, c.Category, c.Subcategory, c.Price, c.Currency,
		c.Location, c.ContactName, c.ContactPhone, c.ContactEmail, images, c.Status,
		c.IsPremium, c.IsUrgent,
	)
	created, err := scanClassified(row)
	if err != nil {
		return nil, fmt.Errorf("create classified ad: %w", err)
	}
	return created, nil
}

// Update modifies an existing classified ad. The approval fields only move
// through Approve and Reject. Returns nil if the id does not exist.
func (s *ClassifiedStore) Update(c *models.ClassifiedAd) (*models.ClassifiedAd, error) {
	images, err := encodeImages(c.Images)
	if err != nil {
		return nil, fmt.Errorf("encode classified images: %w", err)
	}

	row := s.db.QueryRow(`
		UPDATE classified_ads SET
			title = $1, description = $2, category = $3, subcategory = $4,
			price = $5, currency = $6, location = $7,
			contact_name = $8, contact_phone = $9, contact_email = $10,
			images = $11, status = $12, is_premium = $13, is_urgent = $14
		WHERE id = $15
		RETURNING `+classifiedColumns,
		c.Title, c.Description, c.Category, c.Subcategory,
		c.Price, c.Currency, c.Location,
		c.ContactName, c.ContactPhone, c.ContactEmail,
		images, c.Status, c.IsPremium, c.IsUrgent, c.ID,
	)
	updated, err := scanClassified(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update classified ad: %w", err)
	}
	return updated, nil
}

// Delete removes a classified ad by ID. Reports whether a row was deleted.
func (s *ClassifiedStore) Delete(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM classified_ads WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete classified ad: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Approve marks a classified ad approved, recording who approved it and
// when in the same UPDATE so the three fields always change together.
// Returns nil if the id does not exist.
func (s *ClassifiedStore) Approve(id, approverID int64) (*models.ClassifiedAd, error) {
	row := s.db.QueryRow(`
		UPDATE classified_ads SET status = $1, approved_by = $2, approved_at = NOW()
		WHERE id = $3
		RETURNING `+classifiedColumns,
		models.ClassifiedApproved, approverID, id,
	)
	c, err := scanClassified(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("approve classified ad: %w", err)
	}
	return c, nil
}

// Reject marks a classified ad rejected. The approval fields are left
// untouched. Returns nil if the id does not exist.
func (s *ClassifiedStore) Reject(id int64) (*models.ClassifiedAd, error) {
	row := s.db.QueryRow(`
		UPDATE classified_ads SET status = $1
		WHERE id = $2
		RETURNING `+classifiedColumns,
		models.ClassifiedRejected, id,
	)
	c, err := scanClassified(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reject classified ad: %w", err)
	}
	return c, nil
}

// IncrementViews bumps the view counter atomically.
func (s *ClassifiedStore) IncrementViews(id int64) (bool, error) {
	res, err := s.db.Exec(`UPDATE classified_ads SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("increment classified views: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
