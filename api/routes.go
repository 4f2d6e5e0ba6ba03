package api

import (
	"net/http"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/static"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// setupRoutes wires every route family. Page routes share the request
// logger; the preview API group additionally allows the CMS studio origin.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/", handlers.pageHandler.home())
		r.Get("/academy", handlers.pageHandler.infoPage("academy"))
		r.Get("/apply", handlers.pageHandler.applyPage())
		r.Post("/apply", handlers.pageHandler.submitApplication())
		r.Get("/contact", handlers.pageHandler.infoPage("contact"))
		r.Get("/kurucular", handlers.pageHandler.infoPage("founders"))
		r.Get("/koro", handlers.pageHandler.infoPage("choir"))

		r.Get("/courses", handlers.courseHandler.listCourses())
		r.Get("/courses/{slug}", handlers.courseHandler.getCourse())

		r.Get("/announcements", handlers.announcementHandler.listAnnouncements())
		r.Get("/announcements/{slug}", handlers.announcementHandler.getAnnouncement())

		r.Get("/blog", handlers.blogHandler.listArticles())
		r.Get("/blog/{slug}", handlers.blogHandler.getArticle())

		r.Get("/sitemap.xml", handlers.seoHandler.sitemap())
		r.Get("/robots.txt", handlers.seoHandler.robots())

		r.NotFound(handlers.pageHandler.notFound())
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS()))))

	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"https://*.sanity.studio"},
			AllowedMethods: []string{"GET"},
		}))

		r.Get("/api/preview", handlers.previewHandler.enablePreview())
		r.Get("/api/exit-preview", handlers.previewHandler.exitPreview())
	})
}
