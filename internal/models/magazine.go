package models

import "time"

// DigitalMagazine represents a downloadable magazine issue.
type DigitalMagazine struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	IssueNumber   int        `json:"issueNumber"`
	CoverImage    *string    `json:"coverImage,omitempty"`
	FileURL       *string    `json:"fileUrl,omitempty"`
	CategoryID    *int64     `json:"categoryId,omitempty"`
	IsPublished   bool       `json:"isPublished"`
	IsFeatured    bool       `json:"isFeatured"`
	DownloadCount int64      `json:"downloadCount"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// MagazineFilters restricts digital magazine list queries.
type MagazineFilters struct {
	IsPublished *bool
	CategoryID  *int64
	IsFeatured  *bool
}

// MagazineCategory groups digital magazines. Supports a single level of
// nesting via ParentID, like news categories.
type MagazineCategory struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	ParentID    *int64    `json:"parentId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewspaperPage represents a scanned page of a printed edition.
type NewspaperPage struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	PageNumber  int       `json:"pageNumber"`
	IssueDate   time.Time `json:"issueDate"`
	ImageURL    string    `json:"imageUrl"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}
