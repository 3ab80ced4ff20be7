package mapper

import (
	"strings"

	"company-profile-be/internal/dto"
	"company-profile-be/internal/model"
)

type PartnerMapper struct{}

func NewPartnerMapper() *PartnerMapper {
	return &PartnerMapper{}
}

func (m *PartnerMapper) FromCreate(req *dto.CreatePartnerRequest) *model.Partner {
	return &model.Partner{
		Name:            strings.TrimSpace(req.Name),
		Slug:            req.Slug,
		Description:     req.Description,
		LogoUrl:         req.LogoUrl,
		WebsiteUrl:      req.WebsiteUrl,
		PartnershipType: strings.TrimSpace(req.PartnershipType),
		IsActive:        boolOr(req.IsActive, true),
		OrderNumber:     req.OrderNumber,
	}
}

func (m *PartnerMapper) ToUpdates(req *dto.UpdatePartnerRequest) map[string]interface{} {
	u := updates{}
	setTrimmed(u, "name", req.Name)
	set(u, "slug", req.Slug)
	set(u, "description", req.Description)
	set(u, "logo_url", req.LogoUrl)
	set(u, "website_url", req.WebsiteUrl)
	setTrimmed(u, "partnership_type", req.PartnershipType)
	set(u, "is_active", req.IsActive)
	set(u, "order_number", req.OrderNumber)
	return u
}
