package api

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/models"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/seo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type pageHandler struct {
	responder Responder
	logger    zerolog.Logger
	site      Site
}

func newPageHandler(site Site) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder: NewResponder(logger, site.Templates),
		logger:    logger,
		site:      site,
	}
}

type homePageData struct {
	pageData
	Courses       []models.Course
	Announcements []models.Announcement
}

// home renders the landing page with the course catalog and latest
// announcements; both degrade to empty sections when the content source is
// unavailable.
func (h pageHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var courses []models.Course
		var announcements []models.Announcement

		if c := h.site.ContentFor(r); c != nil {
			var err error
			courses, err = c.Courses().FindAll(r.Context())
			if err != nil {
				h.logger.Error().Err(err).Msg("Error fetching courses for homepage")
				courses = nil
			}
			announcements, err = c.Announcements().FindAll(r.Context())
			if err != nil {
				h.logger.Error().Err(err).Msg("Error fetching announcements for homepage")
				announcements = nil
			}
		}

		meta := seo.NewPageMeta(seo.PageMeta{
			Title:     seo.SiteName + " | Müzik & Görsel Sanatlar",
			Canonical: "/",
		})

		data := homePageData{
			pageData:      newPageData(r, meta, seo.OrganizationDoc{}),
			Courses:       courses,
			Announcements: announcements,
		}

		h.responder.RenderPage(w, http.StatusOK, "home.html", data)
	}
}

type infoPageData struct {
	pageData
	Body          template.HTML
	Instructors   []models.Instructor
	ShowApplyForm bool
	FormNotice    string
}

// infoPage renders a repository-authored markdown page. The academy page
// additionally lists the instructor roster from the content source.
func (h pageHandler) infoPage(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := h.site.Pages.Get(slug)
		if !ok {
			h.responder.RenderNotFound(w, r, "Sayfa")
			return
		}

		data := infoPageData{
			pageData: newPageData(r, seo.NewPageMeta(seo.PageMeta{
				Title:       page.Title + " | " + seo.SiteName,
				Description: page.Description,
				Canonical:   "/" + routePathFor(slug),
			})),
			Body: page.Body,
		}

		if slug == "academy" {
			if c := h.site.ContentFor(r); c != nil {
				instructors, err := c.Instructors().FindAll(r.Context())
				if err != nil {
					h.logger.Error().Err(err).Msg("Error fetching instructors for academy page")
				} else {
					data.Instructors = instructors
				}
			}
		}

		h.responder.RenderPage(w, http.StatusOK, "page.html", data)
	}
}

// routePathFor maps a content slug to its route; the Turkish routes kept
// their historical paths.
func routePathFor(slug string) string {
	switch slug {
	case "founders":
		return "kurucular"
	case "choir":
		return "koro"
	default:
		return slug
	}
}

func (h pageHandler) applyPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderApply(w, r, "")
	}
}

// submitApplication delivers the application form by email. Delivery
// failures degrade to a notice on the page; the form is never a hard error.
func (h pageHandler) submitApplication() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.renderApply(w, r, "Form okunamadı, lütfen tekrar deneyin.")
			return
		}

		name := strings.TrimSpace(r.PostFormValue("name"))
		email := strings.TrimSpace(r.PostFormValue("email"))
		course := strings.TrimSpace(r.PostFormValue("course"))
		message := strings.TrimSpace(r.PostFormValue("message"))

		if name == "" || email == "" {
			h.renderApply(w, r, "Ad ve e-posta alanları zorunludur.")
			return
		}

		subject := fmt.Sprintf("Yeni başvuru: %s", name)
		body := fmt.Sprintf("Ad: %s\nE-posta: %s\nKurs: %s\n\n%s", name, email, course, message)

		if err := h.site.Mailer.Send(r.Context(), subject, body); err != nil {
			h.logger.Error().Err(err).Msg("Error delivering application email")
			h.renderApply(w, r, "Başvurunuz şu anda iletilemedi. Lütfen daha sonra tekrar deneyin.")
			return
		}

		h.renderApply(w, r, "Başvurunuz alındı. En kısa sürede sizinle iletişime geçeceğiz.")
	}
}

func (h pageHandler) renderApply(w http.ResponseWriter, r *http.Request, notice string) {
	page, ok := h.site.Pages.Get("apply")
	if !ok {
		h.responder.RenderNotFound(w, r, "Sayfa")
		return
	}

	data := infoPageData{
		pageData: newPageData(r, seo.NewPageMeta(seo.PageMeta{
			Title:       page.Title + " | " + seo.SiteName,
			Description: page.Description,
			Canonical:   "/apply",
		})),
		Body:          page.Body,
		ShowApplyForm: true,
		FormNotice:    notice,
	}

	h.responder.RenderPage(w, http.StatusOK, "page.html", data)
}

func (h pageHandler) notFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.RenderNotFound(w, r, "Sayfa")
	}
}
