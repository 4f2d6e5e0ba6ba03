package api

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(site Site, previewSecret string) *routeHandlers {
	return &routeHandlers{
		pageHandler:         newPageHandler(site),
		courseHandler:       newCourseHandler(site),
		announcementHandler: newAnnouncementHandler(site),
		blogHandler:         newBlogHandler(site),
		seoHandler:          newSEOHandler(site),
		previewHandler:      newPreviewHandler(site, previewSecret),
	}
}
