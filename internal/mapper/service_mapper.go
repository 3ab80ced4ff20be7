package mapper

import (
	"strings"

	"company-profile-be/internal/dto"
	"company-profile-be/internal/model"
)

type ServiceMapper struct{}

func NewServiceMapper() *ServiceMapper {
	return &ServiceMapper{}
}

func (m *ServiceMapper) FromCreate(req *dto.CreateServiceRequest) *model.Service {
	return &model.Service{
		Title:            strings.TrimSpace(req.Title),
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Icon:             req.Icon,
		ImageUrl:         req.ImageUrl,
		Features:         stringList(req.Features),
		IsActive:         boolOr(req.IsActive, true),
		IsFeatured:       req.IsFeatured,
		OrderNumber:      req.OrderNumber,
	}
}

func (m *ServiceMapper) ToUpdates(req *dto.UpdateServiceRequest) map[string]interface{} {
	u := updates{}
	setTrimmed(u, "title", req.Title)
	set(u, "slug", req.Slug)
	set(u, "short_description", req.ShortDescription)
	set(u, "description", req.Description)
	set(u, "icon", req.Icon)
	set(u, "image_url", req.ImageUrl)
	setStrings(u, "features", req.Features)
	set(u, "is_active", req.IsActive)
	set(u, "is_featured", req.IsFeatured)
	set(u, "order_number", req.OrderNumber)
	return u
}
