package seo

import (
	"encoding/json"
	"html/template"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/models"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/portabletext"
)

// Document is the closed variant set of linked-data documents the site emits.
// Each page embeds zero or more documents as JSON-LD script tags. Fields with
// absent source values are omitted from the output, never emitted as null.
type Document interface {
	JSONLD() map[string]any
}

// Script serializes a document into an embeddable JSON-LD script tag. A nil
// document renders nothing.
func Script(doc Document) template.HTML {
	if doc == nil {
		return ""
	}
	data, err := json.Marshal(doc.JSONLD())
	if err != nil {
		return ""
	}
	return template.HTML(`<script type="application/ld+json">` + string(data) + `</script>`)
}

// OrganizationDoc describes the academy itself (homepage, about pages).
type OrganizationDoc struct {
	Description string
	Location    string
	SocialLinks []string
}

func (d OrganizationDoc) JSONLD() map[string]any {
	description := d.Description
	if description == "" {
		description = "Müzik & Görsel Sanatlar Akademisi"
	}
	location := d.Location
	if location == "" {
		location = "İstanbul"
	}
	socialLinks := d.SocialLinks
	if socialLinks == nil {
		socialLinks = []string{}
	}
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "EducationalOrganization",
		"name":        SiteName,
		"description": description,
		"url":         SiteOrigin,
		"logo":        SiteOrigin + "/logo.png",
		"address": map[string]any{
			"@type":           "PostalAddress",
			"addressCountry":  "TR",
			"addressLocality": location,
		},
		"sameAs": socialLinks,
	}
}

// CourseDoc describes a course detail page. Category and level are
// normalized before emission; the CMS side stays flexible, the SEO side
// stays strict.
type CourseDoc struct {
	Course models.Course
}

func (d CourseDoc) JSONLD() map[string]any {
	course := d.Course
	doc := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Course",
		"name":        course.Title,
		"description": course.Description,
		"provider": map[string]any{
			"@type": "EducationalOrganization",
			"name":  SiteName,
			"url":   SiteOrigin,
		},
		"url": SiteOrigin + "/courses/" + course.Slug,
	}

	if course.Code != "" {
		doc["courseCode"] = course.Code
	}
	if level := NormalizeLevel(course.Level); level != "" {
		doc["educationalLevel"] = level.SchemaName()
	}
	if course.Rating > 0 {
		doc["aggregateRating"] = map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": course.Rating,
			"reviewCount": course.ReviewCount,
		}
	}
	if course.Instructor != nil {
		instructor := map[string]any{
			"@type": "Person",
			"name":  course.Instructor.Name,
		}
		if bio := portabletext.ToPlainText(course.Instructor.Bio, 0); bio != "" {
			instructor["description"] = bio
		}
		doc["instructor"] = instructor
	}
	if course.ImageURL != "" {
		doc["image"] = AbsoluteURL(course.ImageURL)
	}

	return doc
}

// SchemaName maps a normalized level to its schema.org spelling.
func (l Level) SchemaName() string {
	switch l {
	case LevelBeginner:
		return "Beginner"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	default:
		return ""
	}
}

// BlogPostingDoc describes a blog article page.
type BlogPostingDoc struct {
	Article models.BlogArticle
}

func (d BlogPostingDoc) JSONLD() map[string]any {
	article := d.Article
	doc := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"headline":    article.Title,
		"description": article.Excerpt,
		"url":         SiteOrigin + "/blog/" + article.Slug,
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  SiteName,
			"logo": map[string]any{
				"@type": "ImageObject",
				"url":   SiteOrigin + "/logo.png",
			},
		},
	}

	if article.PublishedAt != nil {
		doc["datePublished"] = article.PublishedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	if article.Author != nil {
		doc["author"] = map[string]any{
			"@type": "Person",
			"name":  article.Author.Name,
		}
	}
	if article.FeaturedImageURL != "" {
		doc["image"] = map[string]any{
			"@type": "ImageObject",
			"url":   AbsoluteURL(article.FeaturedImageURL),
		}
	}

	return doc
}

// BreadcrumbListDoc positions a breadcrumb trail for rich results. Item URLs
// are resolved against the canonical origin.
type BreadcrumbListDoc struct {
	Trail []models.Breadcrumb
}

func (d BreadcrumbListDoc) JSONLD() map[string]any {
	elements := make([]map[string]any, 0, len(d.Trail))
	for i, crumb := range d.Trail {
		elements = append(elements, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     crumb.Name,
			"item":     AbsoluteURL(crumb.Path),
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	}
}

// PersonDoc describes an instructor profile.
type PersonDoc struct {
	Instructor models.Instructor
}

func (d PersonDoc) JSONLD() map[string]any {
	instructor := d.Instructor
	doc := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     instructor.Name,
		"jobTitle": "Sanat Eğitmeni",
		"worksFor": map[string]any{
			"@type": "EducationalOrganization",
			"name":  SiteName,
			"url":   SiteOrigin,
		},
	}
	if bio := portabletext.ToPlainText(instructor.Bio, 0); bio != "" {
		doc["description"] = bio
	}
	if instructor.ImageURL != "" {
		doc["image"] = instructor.ImageURL
	}
	return doc
}
