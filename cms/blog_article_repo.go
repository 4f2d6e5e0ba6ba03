package cms

import (
	"context"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/models"
)

// Blog listings additionally require a publish date; unpublished drafts never
// appear. Listing projections stay shallow: the rich-text body is only
// fetched by the detail query.

const blogArticlesQuery = `*[_type == "blogArticle" && defined(slug.current) && !(_id in path("drafts.**")) && defined(publishedAt)] | order(publishedAt desc) {
  _id,
  title,
  excerpt,
  "slug": slug.current,
  "featuredImageUrl": featuredImage.asset->url,
  "featuredImageAlt": featuredImage.alt,
  category,
  publishedAt,
  updatedAt,
  readTime,
  "author": author->{
    _id,
    name,
    "imageUrl": image.asset->url
  },
  seoTitle,
  seoDescription,
  seoKeywords
}`

const blogArticleBySlugQuery = `*[_type == "blogArticle" && slug.current == $slug && !(_id in path("drafts.**")) && defined(publishedAt)][0] {
  _id,
  title,
  excerpt,
  "slug": slug.current,
  content,
  "featuredImageUrl": featuredImage.asset->url,
  "featuredImageAlt": featuredImage.alt,
  category,
  publishedAt,
  updatedAt,
  readTime,
  viewCount,
  "author": author->{
    _id,
    name,
    bio,
    "imageUrl": image.asset->url,
    specialization
  },
  seoTitle,
  seoDescription,
  seoKeywords
}`

const blogArticleSlugsQuery = `*[_type == "blogArticle" && defined(slug.current) && !(_id in path("drafts.**")) && defined(publishedAt)] {
  "slug": slug.current
}`

const blogArticleSitemapQuery = `*[_type == "blogArticle" && defined(slug.current) && !(_id in path("drafts.**")) && defined(publishedAt)] | order(publishedAt desc) {
  _id,
  "slug": slug.current,
  _updatedAt,
  publishedAt
}`

type BlogArticleRepo struct {
	client *Client
}

func NewBlogArticleRepo(client *Client) *BlogArticleRepo {
	return &BlogArticleRepo{client}
}

// FindAll returns all published articles, newest first.
func (r *BlogArticleRepo) FindAll(ctx context.Context) ([]models.BlogArticle, error) {
	var articles []models.BlogArticle
	err := r.client.Fetch(ctx, blogArticlesQuery, nil, &articles)
	return articles, err
}

// FindBySlug returns the article with the exact slug, or nil when absent.
func (r *BlogArticleRepo) FindBySlug(ctx context.Context, slug string) (*models.BlogArticle, error) {
	var article models.BlogArticle
	if err := r.client.Fetch(ctx, blogArticleBySlugQuery, map[string]string{"slug": slug}, &article); err != nil {
		return nil, err
	}
	if article.ID == "" {
		return nil, nil
	}
	return &article, nil
}

// Slugs enumerates article slugs for static path generation.
func (r *BlogArticleRepo) Slugs(ctx context.Context) ([]models.SlugRef, error) {
	var slugs []models.SlugRef
	err := r.client.Fetch(ctx, blogArticleSlugsQuery, nil, &slugs)
	return slugs, err
}

// SitemapRefs returns slug and date fields for sitemap entries.
func (r *BlogArticleRepo) SitemapRefs(ctx context.Context) ([]models.SitemapRef, error) {
	var refs []models.SitemapRef
	err := r.client.Fetch(ctx, blogArticleSitemapQuery, nil, &refs)
	return refs, err
}
