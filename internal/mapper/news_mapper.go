package mapper

import (
	"strings"
	"time"

	"company-profile-be/internal/dto"
	"company-profile-be/internal/model"
)

type NewsMapper struct{}

func NewNewsMapper() *NewsMapper {
	return &NewsMapper{}
}

// FromCreate stamps published_date when the article is published on creation.
func (m *NewsMapper) FromCreate(req *dto.CreateNewsRequest) *model.News {
	published := req.PublishedDate
	if req.IsPublished && published == nil {
		now := time.Now()
		published = &now
	}
	return &model.News{
		Title:         strings.TrimSpace(req.Title),
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		Category:      strings.TrimSpace(req.Category),
		Tags:          stringList(req.Tags),
		Author:        req.Author,
		IsPublished:   req.IsPublished,
		IsFeatured:    req.IsFeatured,
		PublishedDate: published,
	}
}

func (m *NewsMapper) ToUpdates(req *dto.UpdateNewsRequest) map[string]interface{} {
	u := updates{}
	setTrimmed(u, "title", req.Title)
	set(u, "slug", req.Slug)
	set(u, "excerpt", req.Excerpt)
	set(u, "content", req.Content)
	set(u, "featured_image", req.FeaturedImage)
	setTrimmed(u, "category", req.Category)
	setStrings(u, "tags", req.Tags)
	set(u, "author", req.Author)
	set(u, "is_published", req.IsPublished)
	set(u, "is_featured", req.IsFeatured)
	set(u, "published_date", req.PublishedDate)
	return u
}
