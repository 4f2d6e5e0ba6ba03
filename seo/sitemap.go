package seo

import (
	"context"
	"encoding/xml"
	"time"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/cms"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// SitemapEntry is one canonical URL with its crawl hints.
type SitemapEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlset struct {
	XMLName xml.Name       `xml:"urlset"`
	Xmlns   string         `xml:"xmlns,attr"`
	URLs    []SitemapEntry `xml:"url"`
}

// BuildSitemap assembles the sitemap entries. The fixed static entries are
// always present; dynamic course and article entries are fetched concurrently
// and simply omitted when the content source is nil or unreachable. The
// sitemap never fails.
func BuildSitemap(ctx context.Context, c *cms.CMS, now time.Time) []SitemapEntry {
	today := now.Format("2006-01-02")

	entries := []SitemapEntry{
		{Loc: SiteOrigin, LastMod: today, ChangeFreq: "daily", Priority: "1.0"},
		{Loc: SiteOrigin + "/courses", LastMod: today, ChangeFreq: "daily", Priority: "0.9"},
	}

	var courseRefs, articleRefs []models.SitemapRef
	if c != nil {
		// Two independent top-level fetches with no ordering dependency;
		// results are combined only after both complete.
		g, groupCtx := errgroup.WithContext(ctx)
		g.Go(func() error {
			refs, err := c.Courses().SitemapRefs(groupCtx)
			if err != nil {
				log.Error().Err(err).Msg("Error fetching courses for sitemap")
				return nil
			}
			courseRefs = refs
			return nil
		})
		g.Go(func() error {
			refs, err := c.BlogArticles().SitemapRefs(groupCtx)
			if err != nil {
				log.Error().Err(err).Msg("Error fetching blog articles for sitemap")
				return nil
			}
			articleRefs = refs
			return nil
		})
		_ = g.Wait()
	}

	for _, ref := range courseRefs {
		entries = append(entries, SitemapEntry{
			Loc:        SiteOrigin + "/courses/" + ref.Slug,
			LastMod:    refLastMod(ref, now),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}
	for _, ref := range articleRefs {
		entries = append(entries, SitemapEntry{
			Loc:        SiteOrigin + "/blog/" + ref.Slug,
			LastMod:    refLastMod(ref, now),
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	entries = append(entries, SitemapEntry{
		Loc: SiteOrigin + "/apply", LastMod: today, ChangeFreq: "monthly", Priority: "0.6",
	})

	return entries
}

func refLastMod(ref models.SitemapRef, now time.Time) string {
	switch {
	case ref.UpdatedAt != nil:
		return ref.UpdatedAt.Format("2006-01-02")
	case ref.PublishedAt != nil:
		return ref.PublishedAt.Format("2006-01-02")
	default:
		return now.Format("2006-01-02")
	}
}

// SitemapXML serializes entries into a sitemap document.
func SitemapXML(entries []SitemapEntry) ([]byte, error) {
	doc := urlset{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  entries,
	}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

// RobotsTxt is the robots directive document. Preview and draft routes are
// disallowed here in addition to the noindex header middleware; neither layer
// is the single point of enforcement.
func RobotsTxt() string {
	return `# robots.txt for ` + SiteOrigin + `

User-agent: *
Allow: /

Disallow: /api/
Disallow: /preview/
Disallow: /draft/
Disallow: /admin/

Sitemap: ` + SiteOrigin + `/sitemap.xml
`
}
