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

type courseHandler struct {
	responder Responder
	logger    zerolog.Logger
	site      Site
}

func newCourseHandler(site Site) courseHandler {
	logger := log.With().Str("handlerName", "courseHandler").Logger()

	return courseHandler{
		responder: NewResponder(logger, site.Templates),
		logger:    logger,
		site:      site,
	}
}

type coursesPageData struct {
	pageData
	Courses    []models.Course
	Categories []seo.Category
}

// listCourses renders the course catalog, optionally filtered by category.
// An unconfigured or unreachable content source renders the empty state.
func (h courseHandler) listCourses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var courses []models.Course

		if c := h.site.ContentFor(r); c != nil {
			var err error
			if category := r.URL.Query().Get("category"); category != "" {
				courses, err = c.Courses().FindByCategory(r.Context(), category)
			} else {
				courses, err = c.Courses().FindAll(r.Context())
			}
			if err != nil {
				h.logger.Error().Err(err).Msg("Error fetching courses, rendering empty listing")
				courses = nil
			}
		}

		meta := seo.NewPageMeta(seo.PageMeta{
			Title:       "Kurslar | " + seo.SiteName,
			Description: "Müzik, görsel sanatlar, fotoğraf ve karma medya kursları.",
			Canonical:   "/courses",
		})

		data := coursesPageData{
			pageData: newPageData(r, meta),
			Courses:  courses,
			Categories: []seo.Category{
				seo.CategoryMusic,
				seo.CategoryVisualArts,
				seo.CategoryPhotography,
				seo.CategoryMixedMedia,
			},
		}
		data.Breadcrumbs = append(models.HomeTrail(), models.Breadcrumb{Name: "Kurslar", Path: "/courses"})

		h.responder.RenderPage(w, http.StatusOK, "courses.html", data)
	}
}

type coursePageData struct {
	pageData
	Course          models.Course
	CategoryName    string
	LevelName       string
	InstructorBio   string
	LongDescription template.HTML
}

// getCourse renders a course detail page, or the not-found outcome when the
// record is absent or the content source is unavailable.
func (h courseHandler) getCourse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.RenderNotFound(w, r, "Kurs")
			return
		}

		c := h.site.ContentFor(r)
		if c == nil {
			h.responder.RenderNotFound(w, r, "Kurs")
			return
		}

		course, err := c.Courses().FindBySlug(r.Context(), slug)
		if err != nil {
			h.logger.Error().Err(err).Str("slug", slug).Msg("Error fetching course")
			h.responder.RenderNotFound(w, r, "Kurs")
			return
		}
		if course == nil {
			h.responder.RenderNotFound(w, r, "Kurs")
			return
		}

		breadcrumbs := append(models.HomeTrail(),
			models.Breadcrumb{Name: "Kurslar", Path: "/courses"},
			models.Breadcrumb{Name: course.Title, Path: "/courses/" + course.Slug},
		)

		data := coursePageData{
			pageData: newPageData(r, seo.CourseMeta(*course),
				seo.BreadcrumbListDoc{Trail: breadcrumbs},
				seo.CourseDoc{Course: *course},
			),
			Course:          *course,
			LongDescription: portabletext.ToHTML(course.LongDescription),
		}
		data.Breadcrumbs = breadcrumbs

		if course.Category != "" {
			data.CategoryName = seo.NormalizeCategory(course.Category).DisplayName()
		}
		data.LevelName = seo.NormalizeLevel(course.Level).DisplayName()
		if course.Instructor != nil {
			data.InstructorBio = portabletext.ToPlainText(course.Instructor.Bio, 200)
		}

		h.responder.RenderPage(w, http.StatusOK, "course.html", data)
	}
}
