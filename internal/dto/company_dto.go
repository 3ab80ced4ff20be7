package dto

import "company-profile-be/internal/model"

type CreateCompanyRequest struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Slug        string           `json:"slug" validate:"omitempty,max=160,slug"`
	Tagline     string           `json:"tagline" validate:"max=255"`
	Description string           `json:"description"`
	Vision      string           `json:"vision"`
	Mission     string           `json:"mission"`
	LogoUrl     string           `json:"logo_url" validate:"max=500"`
	Email       string           `json:"email" validate:"omitempty,email,max=255"`
	Phone       string           `json:"phone" validate:"max=50"`
	Address     string           `json:"address" validate:"max=500"`
	FoundedYear *int             `json:"founded_year" validate:"omitempty,gte=1800,lte=2100"`
	SocialLinks []model.KeyValue `json:"social_links" validate:"max=20,dive"`
	IsActive    *bool            `json:"is_active"`
}

type UpdateCompanyRequest struct {
	Name        *string           `json:"name" validate:"omitempty,min=1,max=200"`
	Slug        *string           `json:"slug" validate:"omitempty,max=160,slug"`
	Tagline     *string           `json:"tagline" validate:"omitempty,max=255"`
	Description *string           `json:"description"`
	Vision      *string           `json:"vision"`
	Mission     *string           `json:"mission"`
	LogoUrl     *string           `json:"logo_url" validate:"omitempty,max=500"`
	Email       *string           `json:"email" validate:"omitempty,email,max=255"`
	Phone       *string           `json:"phone" validate:"omitempty,max=50"`
	Address     *string           `json:"address" validate:"omitempty,max=500"`
	FoundedYear *int              `json:"founded_year" validate:"omitempty,gte=1800,lte=2100"`
	SocialLinks *[]model.KeyValue `json:"social_links" validate:"omitempty,max=20,dive"`
	IsActive    *bool             `json:"is_active"`
}
