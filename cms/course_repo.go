package cms

import (
	"context"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/models"
)

// The course query contract: listings filter to published records with a
// defined slug, sort by creation date descending, and project only what the
// page needs; the detail query additionally filters by exact slug and returns
// at most one record; the slug query returns only slugs for path generation.

const coursesQuery = `*[_type == "course" && defined(slug.current) && !(_id in path("drafts.**"))] | order(_createdAt desc) {
  _id,
  title,
  "description": shortDescription,
  "slug": slug.current,
  "imageUrl": image.asset->url,
  category,
  level,
  rating,
  "instructor": instructor->{
    _id,
    name,
    "imageUrl": image.asset->url,
    specialization
  }
}`

const coursesByCategoryQuery = `*[_type == "course" && category == $category && defined(slug.current) && !(_id in path("drafts.**"))] | order(_createdAt desc) {
  _id,
  title,
  description,
  "slug": slug.current,
  "imageUrl": image.asset->url,
  category,
  level,
  rating
}`

const courseBySlugQuery = `*[_type == "course" && slug.current == $slug && !(_id in path("drafts.**"))][0] {
  _id,
  title,
  description,
  "slug": slug.current,
  "imageUrl": image.asset->url,
  "imageAlt": image.alt,
  category,
  level,
  rating,
  reviewCount,
  code,
  price,
  duration,
  spotsAvailable,
  startDate,
  seoTitle,
  seoDescription,
  seoKeywords,
  "instructor": instructor->{
    _id,
    name,
    bio,
    "imageUrl": image.asset->url,
    specialization
  },
  longDescription,
  _updatedAt
}`

const courseSlugsQuery = `*[_type == "course" && defined(slug.current) && !(_id in path("drafts.**"))] {
  "slug": slug.current
}`

const courseSitemapQuery = `*[_type == "course" && defined(slug.current) && !(_id in path("drafts.**"))] | order(_updatedAt desc) {
  _id,
  "slug": slug.current,
  _updatedAt
}`

type CourseRepo struct {
	client *Client
}

func NewCourseRepo(client *Client) *CourseRepo {
	return &CourseRepo{client}
}

// FindAll returns all published courses, newest first.
func (r *CourseRepo) FindAll(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := r.client.Fetch(ctx, coursesQuery, nil, &courses)
	return courses, err
}

// FindByCategory returns published courses whose raw category matches.
func (r *CourseRepo) FindByCategory(ctx context.Context, category string) ([]models.Course, error) {
	var courses []models.Course
	err := r.client.Fetch(ctx, coursesByCategoryQuery, map[string]string{"category": category}, &courses)
	return courses, err
}

// FindBySlug returns the course with the exact slug, or nil when absent.
func (r *CourseRepo) FindBySlug(ctx context.Context, slug string) (*models.Course, error) {
	var course models.Course
	if err := r.client.Fetch(ctx, courseBySlugQuery, map[string]string{"slug": slug}, &course); err != nil {
		return nil, err
	}
	if course.ID == "" {
		return nil, nil
	}
	return &course, nil
}

// Slugs enumerates course slugs for static path generation.
func (r *CourseRepo) Slugs(ctx context.Context) ([]models.SlugRef, error) {
	var slugs []models.SlugRef
	err := r.client.Fetch(ctx, courseSlugsQuery, nil, &slugs)
	return slugs, err
}

// SitemapRefs returns the slug and last-modified date of every course.
func (r *CourseRepo) SitemapRefs(ctx context.Context) ([]models.SitemapRef, error) {
	var refs []models.SitemapRef
	err := r.client.Fetch(ctx, courseSitemapQuery, nil, &refs)
	return refs, err
}
