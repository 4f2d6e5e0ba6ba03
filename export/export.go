// Package export writes the whole site to disk as static files. Pages are
// rendered through the same router the server uses, so exported HTML and
// served HTML never drift apart.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/api"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/cms"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/models"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/static"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// staticPaths are always exported regardless of content-source availability.
var staticPaths = []string{
	"/",
	"/academy",
	"/apply",
	"/contact",
	"/kurucular",
	"/koro",
	"/courses",
	"/announcements",
	"/blog",
	"/sitemap.xml",
	"/robots.txt",
}

type Exporter struct {
	handler http.Handler
	content *cms.CMS
	outDir  string
	logger  zerolog.Logger
}

func New(site api.Site, outDir string) *Exporter {
	return &Exporter{
		handler: api.NewRouter(site),
		content: site.Content,
		outDir:  outDir,
		logger:  log.With().Str("service", "exporter").Logger(),
	}
}

// Run renders every exportable path into outDir. A path that does not render
// with a 200 is logged and skipped; only filesystem failures abort the run.
func (e *Exporter) Run(ctx context.Context) error {
	paths := append([]string{}, staticPaths...)
	paths = append(paths, e.collectDetailPaths(ctx)...)

	for _, path := range paths {
		if err := e.exportPath(ctx, path); err != nil {
			return err
		}
	}

	if err := e.copyAssets(); err != nil {
		return err
	}

	e.logger.Info().Int("pages", len(paths)).Str("dir", e.outDir).Msg("Static export complete")
	return nil
}

// collectDetailPaths enumerates detail pages from the content source. A
// failing or unconfigured source drops that route family from the export,
// mirroring how the server renders empty listings.
func (e *Exporter) collectDetailPaths(ctx context.Context) []string {
	if e.content == nil {
		e.logger.Warn().Msg("Content source unconfigured, exporting fixed pages only")
		return nil
	}

	var paths []string

	families := []struct {
		prefix string
		slugs  func(context.Context) ([]models.SlugRef, error)
	}{
		{"/courses/", e.content.Courses().Slugs},
		{"/announcements/", e.content.Announcements().Slugs},
		{"/blog/", e.content.BlogArticles().Slugs},
	}

	for _, family := range families {
		refs, err := family.slugs(ctx)
		if err != nil {
			e.logger.Error().Err(err).Str("prefix", family.prefix).Msg("Error enumerating slugs, skipping route family")
			continue
		}
		for _, ref := range refs {
			if ref.Slug == "" {
				continue
			}
			paths = append(paths, family.prefix+ref.Slug)
		}
	}

	return paths
}

func (e *Exporter) exportPath(ctx context.Context, path string) error {
	req := httptest.NewRequest(http.MethodGet, path, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		e.logger.Warn().Int("status", rec.Code).Str("path", path).Msg("Skipping page that did not render")
		return nil
	}

	target := filepath.Join(e.outDir, fileNameFor(path))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating export directory for %s: %w", path, err)
	}
	if err := os.WriteFile(target, rec.Body.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}

// fileNameFor maps a route to its on-disk name: "/" becomes index.html,
// page routes become <route>/index.html, and file-like routes keep their
// extension.
func fileNameFor(path string) string {
	if path == "/" {
		return "index.html"
	}
	trimmed := strings.TrimPrefix(path, "/")
	if strings.Contains(filepath.Base(trimmed), ".") {
		return filepath.FromSlash(trimmed)
	}
	return filepath.Join(filepath.FromSlash(trimmed), "index.html")
}

func (e *Exporter) copyAssets() error {
	assets := static.FS()
	return fs.WalkDir(assets, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			return fmt.Errorf("reading asset %s: %w", name, err)
		}
		target := filepath.Join(e.outDir, "static", filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
