package models

import "time"

// AdPosition identifies the page slot an advertisement renders in.
type AdPosition string

const (
	AdHeader  AdPosition = "header"
	AdSidebar AdPosition = "sidebar"
	AdFooter  AdPosition = "footer"
	AdContent AdPosition = "content"
)

// Advertisement represents a display ad with click/impression counters.
// The start/end dates are informational scheduling hints; no sweep
// deactivates expired ads.
type Advertisement struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	LinkURL     *string    `json:"linkUrl,omitempty"`
	Position    AdPosition `json:"position"`
	Size        string     `json:"size"`
	IsActive    bool       `json:"isActive"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	ClickCount  int64      `json:"clickCount"`
	Impressions int64      `json:"impressions"`
	Priority    int        `json:"priority"`
	CreatedBy   int64      `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// AdFilters restricts advertisement list queries.
type AdFilters struct {
	IsActive *bool
	Position *AdPosition
}
