package models

import "time"

// Category represents a news category. Categories support a single level
// of nesting via ParentID.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	ParentID    *int64    `json:"parentId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`

	// Virtual fields populated by store methods.
	Children  []Category `json:"children"`
	NewsCount int        `json:"newsCount"`
}

// CategoryRef is the projected subset of a Category inlined into enriched
// news and article responses.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// City represents a geographic region news can be tagged with.
type City struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Slug string  `json:"slug"`
	Code *string `json:"code,omitempty"`
}

// SourceType classifies where a news item originated.
type SourceType string

const (
	SourceNewspaper SourceType = "newspaper"
	SourceMagazine  SourceType = "magazine"
	SourceOnline    SourceType = "online"
	SourceTV        SourceType = "tv"
	SourceRadio     SourceType = "radio"
	SourceAgency    SourceType = "agency"
	SourceSocial    SourceType = "social"
)

// Source represents an external news source or agency.
type Source struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Type         SourceType `json:"type"`
	IsActive     bool       `json:"isActive"`
	ContactEmail *string    `json:"contactEmail,omitempty"`
	ContactPhone *string    `json:"contactPhone,omitempty"`
	Website      *string    `json:"website,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}
