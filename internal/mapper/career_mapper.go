package mapper

import (
	"strings"

	"company-profile-be/internal/dto"
	"company-profile-be/internal/model"
)

type CareerMapper struct{}

func NewCareerMapper() *CareerMapper {
	return &CareerMapper{}
}

func (m *CareerMapper) FromCreate(req *dto.CreateCareerRequest) *model.Career {
	status := req.Status
	if status == "" {
		status = model.CareerStatusOpen
	}
	return &model.Career{
		Title:               strings.TrimSpace(req.Title),
		Slug:                req.Slug,
		Department:          strings.TrimSpace(req.Department),
		Location:            req.Location,
		EmploymentType:      req.EmploymentType,
		ExperienceLevel:     req.ExperienceLevel,
		Description:         req.Description,
		Responsibilities:    stringList(req.Responsibilities),
		Requirements:        stringList(req.Requirements),
		Benefits:            stringList(req.Benefits),
		SalaryRange:         req.SalaryRange,
		Status:              status,
		ApplicationDeadline: req.ApplicationDeadline,
		IsFeatured:          req.IsFeatured,
	}
}

func (m *CareerMapper) ToUpdates(req *dto.UpdateCareerRequest) map[string]interface{} {
	u := updates{}
	setTrimmed(u, "title", req.Title)
	set(u, "slug", req.Slug)
	setTrimmed(u, "department", req.Department)
	set(u, "location", req.Location)
	set(u, "employment_type", req.EmploymentType)
	set(u, "experience_level", req.ExperienceLevel)
	set(u, "description", req.Description)
	setStrings(u, "responsibilities", req.Responsibilities)
	setStrings(u, "requirements", req.Requirements)
	setStrings(u, "benefits", req.Benefits)
	set(u, "salary_range", req.SalaryRange)
	set(u, "application_deadline", req.ApplicationDeadline)
	set(u, "is_featured", req.IsFeatured)
	return u
}
