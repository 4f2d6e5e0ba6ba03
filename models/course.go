package models

import (
	"time"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/portabletext"
)

// Course represents a course record as projected by the content source.
// Category and level arrive as free-form editor text and are normalized to
// closed enumerations before any SEO output is produced.
type Course struct {
	ID              string               `json:"_id"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Slug            string               `json:"slug"`
	ImageURL        string               `json:"imageUrl,omitempty"`
	ImageAlt        string               `json:"imageAlt,omitempty"`
	Category        string               `json:"category,omitempty"`
	Level           string               `json:"level,omitempty"`
	Rating          float64              `json:"rating,omitempty"`
	ReviewCount     int                  `json:"reviewCount,omitempty"`
	Code            string               `json:"code,omitempty"`
	Price           float64              `json:"price,omitempty"`
	Duration        string               `json:"duration,omitempty"`
	SpotsAvailable  int                  `json:"spotsAvailable,omitempty"`
	StartDate       string               `json:"startDate,omitempty"`
	SEOTitle        string               `json:"seoTitle,omitempty"`
	SEODescription  string               `json:"seoDescription,omitempty"`
	SEOKeywords     []string             `json:"seoKeywords,omitempty"`
	Instructor      *Instructor          `json:"instructor,omitempty"`
	LongDescription []portabletext.Block `json:"longDescription,omitempty"`
	UpdatedAt       *time.Time           `json:"_updatedAt,omitempty"`
}

// SlugRef is the projection used by slug-enumeration queries: only the slug,
// nothing else, for static path generation.
type SlugRef struct {
	Slug string `json:"slug"`
}

// SitemapRef carries the minimal fields a sitemap entry needs.
type SitemapRef struct {
	ID          string     `json:"_id"`
	Slug        string     `json:"slug"`
	UpdatedAt   *time.Time `json:"_updatedAt,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}
