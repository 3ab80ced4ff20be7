package mapper

import (
	"strings"

	"company-profile-be/internal/dto"
	"company-profile-be/internal/model"
)

type ClientMapper struct{}

func NewClientMapper() *ClientMapper {
	return &ClientMapper{}
}

func (m *ClientMapper) FromCreate(req *dto.CreateClientRequest) *model.Client {
	return &model.Client{
		Name:        strings.TrimSpace(req.Name),
		Slug:        req.Slug,
		Industry:    strings.TrimSpace(req.Industry),
		Description: req.Description,
		LogoUrl:     req.LogoUrl,
		WebsiteUrl:  req.WebsiteUrl,
		Testimonial: req.Testimonial,
		IsActive:    boolOr(req.IsActive, true),
		IsFeatured:  req.IsFeatured,
		OrderNumber: req.OrderNumber,
	}
}

func (m *ClientMapper) ToUpdates(req *dto.UpdateClientRequest) map[string]interface{} {
	u := updates{}
	setTrimmed(u, "name", req.Name)
	set(u, "slug", req.Slug)
	setTrimmed(u, "industry", req.Industry)
	set(u, "description", req.Description)
	set(u, "logo_url", req.LogoUrl)
	set(u, "website_url", req.WebsiteUrl)
	set(u, "testimonial", req.Testimonial)
	set(u, "is_active", req.IsActive)
	set(u, "is_featured", req.IsFeatured)
	set(u, "order_number", req.OrderNumber)
	return u
}
