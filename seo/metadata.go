package seo

import (
	"strings"
	"time"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/models"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/portabletext"
)

// SiteOrigin is the canonical origin of the published site. Canonical URLs,
// Open Graph URLs, and structured-data item URLs are always absolute under
// this origin, never under a deploy preview host.
const SiteOrigin = "https://dadasanatakademisi.com"

const (
	SiteName           = "Dada Sanat Akademisi"
	defaultDescription = "Dada Sanat Akademisi - Müzik & Görsel Sanatlar Akademisi"
	defaultOGImage     = SiteOrigin + "/og-default.jpg"
)

// PageMeta is everything a page template needs to emit its head metadata.
type PageMeta struct {
	Title         string
	Description   string
	Canonical     string
	OGImage       string
	OGImageAlt    string
	OGType        string // "website" or "article"
	PublishedTime *time.Time
	ModifiedTime  *time.Time
	Author        string
	NoIndex       bool
	Keywords      []string
}

// NewPageMeta fills in the site-wide defaults: non-empty title and
// description, absolute canonical and OG image URLs, website OG type.
func NewPageMeta(meta PageMeta) PageMeta {
	if strings.TrimSpace(meta.Title) == "" {
		meta.Title = SiteName
	}
	if strings.TrimSpace(meta.Description) == "" {
		meta.Description = defaultDescription
	}
	if meta.Canonical != "" {
		meta.Canonical = AbsoluteURL(meta.Canonical)
	} else {
		meta.Canonical = SiteOrigin
	}
	if meta.OGImage == "" {
		meta.OGImage = defaultOGImage
	} else {
		meta.OGImage = AbsoluteURL(meta.OGImage)
	}
	if meta.OGImageAlt == "" {
		meta.OGImageAlt = meta.Title
	}
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	return meta
}

// NotFoundMeta is the metadata for any absent record: a "not found" title and
// an explicit no-index directive, never an error.
func NotFoundMeta(entityLabel string) PageMeta {
	return NewPageMeta(PageMeta{
		Title:   entityLabel + " Bulunamadı | " + SiteName,
		NoIndex: true,
	})
}

// CourseMeta derives detail-page metadata from a course record, preferring
// the editor's SEO overrides when present.
func CourseMeta(course models.Course) PageMeta {
	title := course.SEOTitle
	if title == "" {
		title = course.Title
	}
	description := course.SEODescription
	if description == "" {
		description = course.Description
	}
	return NewPageMeta(PageMeta{
		Title:       title,
		Description: TruncateForSEO(description, 160),
		Canonical:   "/courses/" + course.Slug,
		OGImage:     course.ImageURL,
		OGImageAlt:  course.Title,
		Keywords:    courseKeywords(course),
	})
}

func courseKeywords(course models.Course) []string {
	if len(course.SEOKeywords) > 0 {
		return course.SEOKeywords
	}
	return []string{"sanat kursu", "müzik eğitimi", course.Title}
}

// ArticleMeta derives metadata for a blog article page.
func ArticleMeta(article models.BlogArticle) PageMeta {
	title := article.SEOTitle
	if title == "" {
		title = article.Title
	}
	description := article.SEODescription
	if description == "" {
		description = article.Excerpt
	}
	keywords := article.SEOKeywords
	if len(keywords) == 0 {
		keywords = []string{"sanat", "eğitim", "blog"}
	}
	modified := article.UpdatedAt
	if modified == nil {
		modified = article.PublishedAt
	}
	var author string
	if article.Author != nil {
		author = article.Author.Name
	}
	return NewPageMeta(PageMeta{
		Title:         title,
		Description:   TruncateForSEO(description, 160),
		Canonical:     "/blog/" + article.Slug,
		OGImage:       article.FeaturedImageURL,
		OGImageAlt:    article.Title,
		OGType:        "article",
		PublishedTime: article.PublishedAt,
		ModifiedTime:  modified,
		Author:        author,
		Keywords:      keywords,
	})
}

// AnnouncementMeta derives metadata for an announcement page, falling back to
// the document body when no excerpt was authored.
func AnnouncementMeta(ann models.Announcement) PageMeta {
	description := ann.Excerpt
	if description == "" {
		description = portabletext.ToPlainText(ann.Content, 160)
	}
	return NewPageMeta(PageMeta{
		Title:         ann.Title,
		Description:   TruncateForSEO(description, 160),
		Canonical:     "/announcements/" + ann.Slug,
		OGType:        "article",
		PublishedTime: ann.PublishedAt,
	})
}

// AbsoluteURL resolves a path against the canonical origin. Already-absolute
// URLs pass through, protocol-relative URLs get https.
func AbsoluteURL(pathOrURL string) string {
	switch {
	case pathOrURL == "":
		return SiteOrigin
	case strings.HasPrefix(pathOrURL, "http"):
		return pathOrURL
	case strings.HasPrefix(pathOrURL, "//"):
		return "https:" + pathOrURL
	case strings.HasPrefix(pathOrURL, "/"):
		return SiteOrigin + pathOrURL
	default:
		return SiteOrigin + "/" + pathOrURL
	}
}

// TruncateForSEO trims text to maxLength, cutting at the last word boundary.
// This is the description-facing sibling of portabletext.ToPlainText's hard
// cut; the two behave differently on purpose.
func TruncateForSEO(text string, maxLength int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	runes := []rune(trimmed)
	if len(runes) <= maxLength {
		return trimmed
	}

	truncated := string(runes[:maxLength])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > 0 {
		return truncated[:lastSpace] + "..."
	}
	return truncated + "..."
}
