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

type announcementHandler struct {
	responder Responder
	logger    zerolog.Logger
	site      Site
}

func newAnnouncementHandler(site Site) announcementHandler {
	logger := log.With().Str("handlerName", "announcementHandler").Logger()

	return announcementHandler{
		responder: NewResponder(logger, site.Templates),
		logger:    logger,
		site:      site,
	}
}

type announcementsPageData struct {
	pageData
	Announcements []models.Announcement
}

func (h announcementHandler) listAnnouncements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var announcements []models.Announcement

		if c := h.site.ContentFor(r); c != nil {
			var err error
			announcements, err = c.Announcements().FindAll(r.Context())
			if err != nil {
				h.logger.Error().Err(err).Msg("Error fetching announcements, rendering empty listing")
				announcements = nil
			}
		}

		meta := seo.NewPageMeta(seo.PageMeta{
			Title:       "Duyurular | " + seo.SiteName,
			Description: "Dada Sanat Akademisi'nden güncel duyurular.",
			Canonical:   "/announcements",
		})

		data := announcementsPageData{
			pageData:      newPageData(r, meta),
			Announcements: announcements,
		}
		data.Breadcrumbs = append(models.HomeTrail(), models.Breadcrumb{Name: "Duyurular", Path: "/announcements"})

		h.responder.RenderPage(w, http.StatusOK, "announcements.html", data)
	}
}

type announcementPageData struct {
	pageData
	Announcement models.Announcement
	Content      template.HTML
}

func (h announcementHandler) getAnnouncement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.RenderNotFound(w, r, "Duyuru")
			return
		}

		c := h.site.ContentFor(r)
		if c == nil {
			h.responder.RenderNotFound(w, r, "Duyuru")
			return
		}

		announcement, err := c.Announcements().FindBySlug(r.Context(), slug)
		if err != nil {
			h.logger.Error().Err(err).Str("slug", slug).Msg("Error fetching announcement")
			h.responder.RenderNotFound(w, r, "Duyuru")
			return
		}
		if announcement == nil {
			h.responder.RenderNotFound(w, r, "Duyuru")
			return
		}

		breadcrumbs := append(models.HomeTrail(),
			models.Breadcrumb{Name: "Duyurular", Path: "/announcements"},
			models.Breadcrumb{Name: announcement.Title, Path: "/announcements/" + announcement.Slug},
		)

		data := announcementPageData{
			pageData: newPageData(r, seo.AnnouncementMeta(*announcement),
				seo.BreadcrumbListDoc{Trail: breadcrumbs},
			),
			Announcement: *announcement,
			Content:      portabletext.ToHTML(announcement.Content),
		}
		data.Breadcrumbs = breadcrumbs

		h.responder.RenderPage(w, http.StatusOK, "announcement.html", data)
	}
}
