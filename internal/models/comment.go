package models

import "time"

// CommentStatus represents the moderation state of a reader comment.
type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentRejected CommentStatus = "rejected"
)

// Comment represents a reader comment attached to a news item.
type Comment struct {
	ID          int64         `json:"id"`
	NewsID      int64         `json:"newsId"`
	AuthorName  string        `json:"authorName"`
	AuthorEmail string        `json:"authorEmail"`
	Content     string        `json:"content"`
	Status      CommentStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// CommentFilters restricts comment list queries.
type CommentFilters struct {
	Status *CommentStatus
	NewsID *int64
}
