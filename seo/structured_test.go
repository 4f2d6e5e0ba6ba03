package seo

import (
	"strings"
	"testing"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/models"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/portabletext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptWrapsJSONLD(t *testing.T) {
	script := string(Script(OrganizationDoc{}))

	assert.True(t, strings.HasPrefix(script, `<script type="application/ld+json">`))
	assert.True(t, strings.HasSuffix(script, `</script>`))
	assert.Contains(t, script, `"EducationalOrganization"`)
}

func TestScriptNilDocument(t *testing.T) {
	assert.Empty(t, Script(nil))
}

func TestCourseDocOmitsAbsentFields(t *testing.T) {
	doc := CourseDoc{Course: models.Course{
		Title:       "Piyano",
		Description: "Temel piyano",
		Slug:        "piyano",
	}}.JSONLD()

	assert.NotContains(t, doc, "courseCode")
	assert.NotContains(t, doc, "educationalLevel")
	assert.NotContains(t, doc, "aggregateRating")
	assert.NotContains(t, doc, "instructor")
	assert.NotContains(t, doc, "image")
	assert.Equal(t, SiteOrigin+"/courses/piyano", doc["url"])
}

func TestCourseDocFullRecord(t *testing.T) {
	bio := []portabletext.Block{{
		Type: "block", Style: "normal",
		Children: []portabletext.Span{{Type: "span", Text: "20 yıllık eğitmen."}},
	}}

	doc := CourseDoc{Course: models.Course{
		Title:       "İleri Piyano",
		Description: "İleri seviye repertuvar",
		Slug:        "ileri-piyano",
		Code:        "MUS-301",
		Level:       "İleri",
		Rating:      4.8,
		ReviewCount: 12,
		ImageURL:    "/images/piyano.jpg",
		Instructor:  &models.Instructor{Name: "Ayşe Demir", Bio: bio},
	}}.JSONLD()

	assert.Equal(t, "MUS-301", doc["courseCode"])
	assert.Equal(t, "Advanced", doc["educationalLevel"])
	assert.Equal(t, SiteOrigin+"/images/piyano.jpg", doc["image"])

	rating, ok := doc["aggregateRating"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 4.8, rating["ratingValue"])
	assert.Equal(t, 12, rating["reviewCount"])

	instructor, ok := doc["instructor"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ayşe Demir", instructor["name"])
	assert.Equal(t, "20 yıllık eğitmen.", instructor["description"])
}

func TestCourseDocUnknownLevelOmitted(t *testing.T) {
	doc := CourseDoc{Course: models.Course{Title: "Atölye", Slug: "atolye", Level: "serbest"}}.JSONLD()
	assert.NotContains(t, doc, "educationalLevel")
}

func TestBreadcrumbListDocPositions(t *testing.T) {
	trail := append(models.HomeTrail(),
		models.Breadcrumb{Name: "Kurslar", Path: "/courses"},
		models.Breadcrumb{Name: "Piyano", Path: "/courses/piyano"},
	)

	doc := BreadcrumbListDoc{Trail: trail}.JSONLD()

	elements, ok := doc["itemListElement"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, elements, 3)

	assert.Equal(t, 1, elements[0]["position"])
	assert.Equal(t, "Ana Sayfa", elements[0]["name"])
	assert.Equal(t, SiteOrigin+"/", elements[0]["item"])

	assert.Equal(t, 3, elements[2]["position"])
	assert.Equal(t, SiteOrigin+"/courses/piyano", elements[2]["item"])
}

func TestBlogPostingDocOmitsAbsentAuthor(t *testing.T) {
	doc := BlogPostingDoc{Article: models.BlogArticle{Title: "Yazı", Slug: "yazi"}}.JSONLD()

	assert.NotContains(t, doc, "author")
	assert.NotContains(t, doc, "datePublished")
	assert.NotContains(t, doc, "image")
}

func TestPersonDoc(t *testing.T) {
	doc := PersonDoc{Instructor: models.Instructor{Name: "Mehmet Kaya"}}.JSONLD()

	assert.Equal(t, "Mehmet Kaya", doc["name"])
	assert.NotContains(t, doc, "description")
	assert.NotContains(t, doc, "image")
}
