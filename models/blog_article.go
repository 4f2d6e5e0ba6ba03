package models

import (
	"time"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/portabletext"
)

// BlogArticle represents a published article with its author reference.
type BlogArticle struct {
	ID               string               `json:"_id"`
	Title            string               `json:"title"`
	Excerpt          string               `json:"excerpt,omitempty"`
	Slug             string               `json:"slug"`
	Content          []portabletext.Block `json:"content,omitempty"`
	FeaturedImageURL string               `json:"featuredImageUrl,omitempty"`
	FeaturedImageAlt string               `json:"featuredImageAlt,omitempty"`
	Category         string               `json:"category,omitempty"`
	PublishedAt      *time.Time           `json:"publishedAt,omitempty"`
	UpdatedAt        *time.Time           `json:"updatedAt,omitempty"`
	ReadTime         int                  `json:"readTime,omitempty"`
	ViewCount        int                  `json:"viewCount,omitempty"`
	Author           *Instructor          `json:"author,omitempty"`
	SEOTitle         string               `json:"seoTitle,omitempty"`
	SEODescription   string               `json:"seoDescription,omitempty"`
	SEOKeywords      []string             `json:"seoKeywords,omitempty"`
}
