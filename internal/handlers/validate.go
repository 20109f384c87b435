package handlers

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"gazete/internal/models"
)

// Validation limits for content fields.
const (
	maxTitleLen    = 300
	maxSlugLen     = 300
	maxContentLen  = 100_000
	maxSummaryLen  = 1_000
	maxMetaLen     = 500
	maxNameLen     = 200
	maxCommentLen  = 5_000
	maxUsernameLen = 100
	minPasswordLen = 6
)

// validateContent checks the shared title/slug/content fields and
// returns the first error found.
func validateContent(title, slug, content string) string {
	if strings.TrimSpace(title) == "" {
		return "title is required"
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "title is too long (max 300 characters)"
	}
	if utf8.RuneCountInString(slug) > maxSlugLen {
		return "slug is too long (max 300 characters)"
	}
	if strings.TrimSpace(content) == "" {
		return "content is required"
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "content is too long (max 100,000 characters)"
	}
	return ""
}

// validateMetadata checks the optional SEO fields.
func validateMetadata(summary, metaTitle, metaDesc, keywords *string) string {
	if summary != nil && utf8.RuneCountInString(*summary) > maxSummaryLen {
		return "summary is too long (max 1,000 characters)"
	}
	for _, field := range []*string{metaTitle, metaDesc, keywords} {
		if field != nil && utf8.RuneCountInString(*field) > maxMetaLen {
			return "metadata field is too long (max 500 characters)"
		}
	}
	return ""
}

// validateName checks a required short name field.
func validateName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "name is required"
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "name is too long (max 200 characters)"
	}
	return ""
}

// validateStatus checks a content publication status.
func validateStatus(s models.ContentStatus) string {
	switch s {
	case models.StatusDraft, models.StatusReview, models.StatusPublished, models.StatusScheduled:
		return ""
	}
	return "invalid status"
}

// validateEmail checks an address against RFC 5322 parsing.
func validateEmail(email string) string {
	if _, err := mail.ParseAddress(email); err != nil {
		return "invalid email address"
	}
	return ""
}
