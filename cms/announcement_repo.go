package cms

import (
	"context"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/models"
)

const announcementsQuery = `*[_type == "announcement" && defined(slug.current) && !(_id in path("drafts.**")) && defined(publishedAt)] | order(publishedAt desc) {
  _id,
  title,
  excerpt,
  "slug": slug.current,
  publishedAt
}`

const announcementBySlugQuery = `*[_type == "announcement" && slug.current == $slug && !(_id in path("drafts.**")) && defined(publishedAt)][0] {
  _id,
  title,
  excerpt,
  "slug": slug.current,
  content,
  publishedAt,
  ctaText,
  ctaLink
}`

const announcementSlugsQuery = `*[_type == "announcement" && defined(slug.current) && !(_id in path("drafts.**")) && defined(publishedAt)] {
  "slug": slug.current
}`

type AnnouncementRepo struct {
	client *Client
}

func NewAnnouncementRepo(client *Client) *AnnouncementRepo {
	return &AnnouncementRepo{client}
}

// FindAll returns all published announcements, newest first.
func (r *AnnouncementRepo) FindAll(ctx context.Context) ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.client.Fetch(ctx, announcementsQuery, nil, &announcements)
	return announcements, err
}

// FindBySlug returns the announcement with the exact slug, or nil when absent.
func (r *AnnouncementRepo) FindBySlug(ctx context.Context, slug string) (*models.Announcement, error) {
	var announcement models.Announcement
	if err := r.client.Fetch(ctx, announcementBySlugQuery, map[string]string{"slug": slug}, &announcement); err != nil {
		return nil, err
	}
	if announcement.ID == "" {
		return nil, nil
	}
	return &announcement, nil
}

// Slugs enumerates announcement slugs for static path generation.
func (r *AnnouncementRepo) Slugs(ctx context.Context) ([]models.SlugRef, error) {
	var slugs []models.SlugRef
	err := r.client.Fetch(ctx, announcementSlugsQuery, nil, &slugs)
	return slugs, err
}
