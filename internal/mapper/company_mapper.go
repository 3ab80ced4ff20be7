package mapper

import (
	"strings"

	"company-profile-be/internal/dto"
	"company-profile-be/internal/model"
)

type CompanyMapper struct{}

func NewCompanyMapper() *CompanyMapper {
	return &CompanyMapper{}
}

func (m *CompanyMapper) FromCreate(req *dto.CreateCompanyRequest) *model.Company {
	return &model.Company{
		Name:        strings.TrimSpace(req.Name),
		Slug:        req.Slug,
		Tagline:     req.Tagline,
		Description: req.Description,
		Vision:      req.Vision,
		Mission:     req.Mission,
		LogoUrl:     req.LogoUrl,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		FoundedYear: req.FoundedYear,
		SocialLinks: pairList(req.SocialLinks),
		IsActive:    boolOr(req.IsActive, true),
	}
}

func (m *CompanyMapper) ToUpdates(req *dto.UpdateCompanyRequest) map[string]interface{} {
	u := updates{}
	setTrimmed(u, "name", req.Name)
	set(u, "slug", req.Slug)
	set(u, "tagline", req.Tagline)
	set(u, "description", req.Description)
	set(u, "vision", req.Vision)
	set(u, "mission", req.Mission)
	set(u, "logo_url", req.LogoUrl)
	set(u, "email", req.Email)
	set(u, "phone", req.Phone)
	set(u, "address", req.Address)
	set(u, "founded_year", req.FoundedYear)
	setPairs(u, "social_links", req.SocialLinks)
	set(u, "is_active", req.IsActive)
	return u
}
