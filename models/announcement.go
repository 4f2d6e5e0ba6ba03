package models

import (
	"time"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/portabletext"
)

// Announcement is a dated notice with an optional call to action.
type Announcement struct {
	ID          string               `json:"_id"`
	Title       string               `json:"title"`
	Excerpt     string               `json:"excerpt,omitempty"`
	Slug        string               `json:"slug"`
	Content     []portabletext.Block `json:"content,omitempty"`
	PublishedAt *time.Time           `json:"publishedAt,omitempty"`
	CTAText     string               `json:"ctaText,omitempty"`
	CTALink     string               `json:"ctaLink,omitempty"`
}

// ShowCTA reports whether the call-to-action element may be rendered.
// The CTA appears if and only if both the label and the target are
// non-empty; this is a contract with content editors, not a styling choice.
func (a Announcement) ShowCTA() bool {
	return a.CTAText != "" && a.CTALink != ""
}
