package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	pageHandler         pageHandler
	courseHandler       courseHandler
	announcementHandler announcementHandler
	blogHandler         blogHandler
	seoHandler          seoHandler
	previewHandler      previewHandler
}
