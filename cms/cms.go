package cms

// CMS aggregates the per-type repositories over one shared client. New
// returns nil for a nil client so the "feature unavailable" contract of
// NewClient propagates to every caller holding a CMS.
type CMS struct {
	courseRepo       *CourseRepo
	blogArticleRepo  *BlogArticleRepo
	announcementRepo *AnnouncementRepo
	instructorRepo   *InstructorRepo
}

func New(client *Client) *CMS {
	if client == nil {
		return nil
	}
	return &CMS{
		courseRepo:       NewCourseRepo(client),
		blogArticleRepo:  NewBlogArticleRepo(client),
		announcementRepo: NewAnnouncementRepo(client),
		instructorRepo:   NewInstructorRepo(client),
	}
}

// Accessor methods for each repository

func (c *CMS) Courses() *CourseRepo {
	return c.courseRepo
}

func (c *CMS) BlogArticles() *BlogArticleRepo {
	return c.blogArticleRepo
}

func (c *CMS) Announcements() *AnnouncementRepo {
	return c.announcementRepo
}

func (c *CMS) Instructors() *InstructorRepo {
	return c.instructorRepo
}
