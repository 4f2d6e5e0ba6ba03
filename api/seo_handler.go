package api

import (
	"net/http"
	"time"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/seo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type seoHandler struct {
	logger zerolog.Logger
	site   Site
}

func newSEOHandler(site Site) seoHandler {
	return seoHandler{
		logger: log.With().Str("handlerName", "seoHandler").Logger(),
		site:   site,
	}
}

// sitemap serves the full sitemap. Content fetches that fail only shrink the
// dynamic sections; the static entries are always present.
func (h seoHandler) sitemap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := seo.BuildSitemap(r.Context(), h.site.Content, time.Now())

		body, err := seo.SitemapXML(entries)
		if err != nil {
			h.logger.Error().Err(err).Msg("Error marshaling sitemap")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		if _, err := w.Write(body); err != nil {
			h.logger.Error().Err(err).Msg("Error writing sitemap response")
		}
	}
}

func (h seoHandler) robots() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		if _, err := w.Write([]byte(seo.RobotsTxt())); err != nil {
			h.logger.Error().Err(err).Msg("Error writing robots response")
		}
	}
}
