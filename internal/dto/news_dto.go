package dto

import "time"

type CreateNewsRequest struct {
	Title         string     `json:"title" validate:"required,max=255"`
	Slug          string     `json:"slug" validate:"omitempty,max=160,slug"`
	Excerpt       string     `json:"excerpt" validate:"max=500"`
	Content       string     `json:"content"`
	FeaturedImage string     `json:"featured_image" validate:"max=500"`
	Category      string     `json:"category" validate:"max=100"`
	Tags          []string   `json:"tags" validate:"max=30,dive,required,max=50"`
	Author        string     `json:"author" validate:"max=150"`
	IsPublished   bool       `json:"is_published"`
	IsFeatured    bool       `json:"is_featured"`
	PublishedDate *time.Time `json:"published_date"`
}

type UpdateNewsRequest struct {
	Title         *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Slug          *string    `json:"slug" validate:"omitempty,max=160,slug"`
	Excerpt       *string    `json:"excerpt" validate:"omitempty,max=500"`
	Content       *string    `json:"content"`
	FeaturedImage *string    `json:"featured_image" validate:"omitempty,max=500"`
	Category      *string    `json:"category" validate:"omitempty,max=100"`
	Tags          *[]string  `json:"tags" validate:"omitempty,max=30,dive,required,max=50"`
	Author        *string    `json:"author" validate:"omitempty,max=150"`
	IsPublished   *bool      `json:"is_published"`
	IsFeatured    *bool      `json:"is_featured"`
	PublishedDate *time.Time `json:"published_date"`
}
