package api

import (
	"html/template"
	"net/http"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/models"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/portabletext"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/seo"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	site      Site
}

func newBlogHandler(site Site) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger, site.Templates),
		logger:    logger,
		site:      site,
	}
}

type blogPageData struct {
	pageData
	Articles []models.BlogArticle
}

func (h blogHandler) listArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var articles []models.BlogArticle

		if c := h.site.ContentFor(r); c != nil {
			var err error
			articles, err = c.BlogArticles().FindAll(r.Context())
			if err != nil {
				h.logger.Error().Err(err).Msg("Error fetching blog articles, rendering empty listing")
				articles = nil
			}
		}

		meta := seo.NewPageMeta(seo.PageMeta{
			Title:       "Blog | " + seo.SiteName,
			Description: "Sanat ve eğitim üzerine yazılar.",
			Canonical:   "/blog",
		})

		data := blogPageData{
			pageData: newPageData(r, meta),
			Articles: articles,
		}
		data.Breadcrumbs = append(models.HomeTrail(), models.Breadcrumb{Name: "Blog", Path: "/blog"})

		h.responder.RenderPage(w, http.StatusOK, "blog.html", data)
	}
}

type articlePageData struct {
	pageData
	Article models.BlogArticle
	Content template.HTML
}

func (h blogHandler) getArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.RenderNotFound(w, r, "Yazı")
			return
		}

		c := h.site.ContentFor(r)
		if c == nil {
			h.responder.RenderNotFound(w, r, "Yazı")
			return
		}

		article, err := c.BlogArticles().FindBySlug(r.Context(), slug)
		if err != nil {
			h.logger.Error().Err(err).Str("slug", slug).Msg("Error fetching blog article")
			h.responder.RenderNotFound(w, r, "Yazı")
			return
		}
		if article == nil {
			h.responder.RenderNotFound(w, r, "Yazı")
			return
		}

		breadcrumbs := append(models.HomeTrail(),
			models.Breadcrumb{Name: "Blog", Path: "/blog"},
			models.Breadcrumb{Name: article.Title, Path: "/blog/" + article.Slug},
		)

		data := articlePageData{
			pageData: newPageData(r, seo.ArticleMeta(*article),
				seo.BreadcrumbListDoc{Trail: breadcrumbs},
				seo.BlogPostingDoc{Article: *article},
			),
			Article: *article,
			Content: portabletext.ToHTML(article.Content),
		}
		data.Breadcrumbs = breadcrumbs

		h.responder.RenderPage(w, http.StatusOK, "article.html", data)
	}
}
