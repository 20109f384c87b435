package models

import "time"

// ContentStatus represents the publishing state of a news item or article.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusReview    ContentStatus = "review"
	StatusPublished ContentStatus = "published"
	StatusScheduled ContentStatus = "scheduled"
)

// News represents a news item with its SEO metadata and optional
// city/source tagging.
type News struct {
	ID              int64         `json:"id"`
	Title           string        `json:"title"`
	Slug            string        `json:"slug"`
	Summary         *string       `json:"summary,omitempty"`
	Content         string        `json:"content"`
	FeaturedImage   *string       `json:"featuredImage,omitempty"`
	FeaturedVideo   *string       `json:"featuredVideo,omitempty"`
	Status          ContentStatus `json:"status"`
	AuthorID        int64         `json:"authorId"`
	EditorID        *int64        `json:"editorId,omitempty"`
	CategoryID      int64         `json:"categoryId"`
	CityID          *int64        `json:"cityId,omitempty"`
	SourceID        *int64        `json:"sourceId,omitempty"`
	ViewCount       int64         `json:"viewCount"`
	PublishedAt     *time.Time    `json:"publishedAt,omitempty"`
	ScheduledAt     *time.Time    `json:"scheduledAt,omitempty"`
	MetaTitle       *string       `json:"metaTitle,omitempty"`
	MetaDescription *string       `json:"metaDescription,omitempty"`
	Keywords        *string       `json:"keywords,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// IsPublished returns true if the news item is in published status.
func (n *News) IsPublished() bool {
	return n.Status == StatusPublished
}

// NewsWithDetails is a news item enriched with the projected author and
// category rows. Produced by join queries; rows whose author or category
// cannot be resolved are not represented by this type.
type NewsWithDetails struct {
	News
	Author   Author      `json:"author"`
	Category CategoryRef `json:"category"`
}

// NewsFilters restricts news list queries. Nil fields impose no constraint;
// present fields are ANDed together.
type NewsFilters struct {
	Status     *ContentStatus
	CategoryID *int64
	AuthorID   *int64
}

// Article is a standalone editorial piece. Structurally a news item minus
// the city/source/video tagging.
type Article struct {
	ID              int64         `json:"id"`
	Title           string        `json:"title"`
	Slug            string        `json:"slug"`
	Summary         *string       `json:"summary,omitempty"`
	Content         string        `json:"content"`
	FeaturedImage   *string       `json:"featuredImage,omitempty"`
	Status          ContentStatus `json:"status"`
	AuthorID        int64         `json:"authorId"`
	EditorID        *int64        `json:"editorId,omitempty"`
	CategoryID      int64         `json:"categoryId"`
	ViewCount       int64         `json:"viewCount"`
	PublishedAt     *time.Time    `json:"publishedAt,omitempty"`
	ScheduledAt     *time.Time    `json:"scheduledAt,omitempty"`
	MetaTitle       *string       `json:"metaTitle,omitempty"`
	MetaDescription *string       `json:"metaDescription,omitempty"`
	Keywords        *string       `json:"keywords,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// ArticleWithDetails is an article enriched with the projected author and
// category rows.
type ArticleWithDetails struct {
	Article
	Author   Author      `json:"author"`
	Category CategoryRef `json:"category"`
}

// ArticleFilters restricts article list queries.
type ArticleFilters struct {
	Status     *ContentStatus
	CategoryID *int64
	AuthorID   *int64
}
