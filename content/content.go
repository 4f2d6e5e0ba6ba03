// Package content holds the informational pages that are authored in the
// repository rather than the CMS: markdown files with frontmatter, embedded
// at build time and parsed once at startup.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

//go:embed pages/*.md
var pagesFS embed.FS

// Page is one parsed informational page.
type Page struct {
	Slug        string
	Title       string
	Description string
	Body        template.HTML
}

// Library holds all parsed pages, keyed by slug.
type Library struct {
	pages map[string]Page
}

// Load parses every embedded markdown page. It fails fast: these pages ship
// with the binary, so a parse error is a programming error, not a runtime
// condition to degrade around.
func Load() (*Library, error) {
	md := goldmark.New(goldmark.WithExtensions(meta.Meta))

	entries, err := fs.ReadDir(pagesFS, "pages")
	if err != nil {
		return nil, fmt.Errorf("reading embedded pages: %w", err)
	}

	library := &Library{pages: make(map[string]Page, len(entries))}
	for _, entry := range entries {
		source, err := pagesFS.ReadFile("pages/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading page %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		ctx := parser.NewContext()
		if err := md.Convert(source, &buf, parser.WithContext(ctx)); err != nil {
			return nil, fmt.Errorf("parsing page %s: %w", entry.Name(), err)
		}

		frontmatter := meta.Get(ctx)
		slug := strings.TrimSuffix(entry.Name(), ".md")
		library.pages[slug] = Page{
			Slug:        slug,
			Title:       metaString(frontmatter, "title"),
			Description: metaString(frontmatter, "description"),
			Body:        template.HTML(buf.String()),
		}
	}

	return library, nil
}

// Get returns the page for slug, or false when no such page exists.
func (l *Library) Get(slug string) (Page, bool) {
	page, ok := l.pages[slug]
	return page, ok
}

// Slugs returns all page slugs, sorted.
func (l *Library) Slugs() []string {
	slugs := make([]string, 0, len(l.pages))
	for slug := range l.pages {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

func metaString(frontmatter map[string]interface{}, key string) string {
	if frontmatter == nil {
		return ""
	}
	if value, ok := frontmatter[key].(string); ok {
		return value
	}
	return ""
}
