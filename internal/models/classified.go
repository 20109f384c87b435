package models

import "time"

// ClassifiedStatus represents the moderation state of a classified ad.
type ClassifiedStatus string

const (
	ClassifiedPending  ClassifiedStatus = "pending"
	ClassifiedApproved ClassifiedStatus = "approved"
	ClassifiedRejected ClassifiedStatus = "rejected"
	ClassifiedExpired  ClassifiedStatus = "expired"
)

// ClassifiedAd represents a reader-submitted classified listing.
// ApprovedBy and ApprovedAt are only ever set together, by the approval
// operation.
type ClassifiedAd struct {
	ID           int64            `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Category     string           `json:"category"`
	Subcategory  *string          `json:"subcategory,omitempty"`
	Price        *float64         `json:"price,omitempty"`
	Currency     string           `json:"currency"`
	Location     *string          `json:"location,omitempty"`
	ContactName  string           `json:"contactName"`
	ContactPhone *string          `json:"contactPhone,omitempty"`
	ContactEmail *string          `json:"contactEmail,omitempty"`
	Images       []string         `json:"images"`
	Status       ClassifiedStatus `json:"status"`
	IsPremium    bool             `json:"isPremium"`
	IsUrgent     bool             `json:"isUrgent"`
	ViewCount    int64            `json:"viewCount"`
	ApprovedBy   *int64           `json:"approvedBy,omitempty"`
	ApprovedAt   *time.Time       `json:"approvedAt,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// ClassifiedFilters restricts classified ad list queries.
type ClassifiedFilters struct {
	Status    *ClassifiedStatus
	Category  *string
	IsPremium *bool
}
