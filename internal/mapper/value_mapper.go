package mapper

import (
	"strings"

	"company-profile-be/internal/dto"
	"company-profile-be/internal/model"
)

type ValueMapper struct{}

func NewValueMapper() *ValueMapper {
	return &ValueMapper{}
}

func (m *ValueMapper) FromCreate(req *dto.CreateValueRequest) *model.Value {
	return &model.Value{
		Title:       strings.TrimSpace(req.Title),
		Slug:        req.Slug,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    boolOr(req.IsActive, true),
		OrderNumber: req.OrderNumber,
	}
}

func (m *ValueMapper) ToUpdates(req *dto.UpdateValueRequest) map[string]interface{} {
	u := updates{}
	setTrimmed(u, "title", req.Title)
	set(u, "slug", req.Slug)
	set(u, "description", req.Description)
	set(u, "icon", req.Icon)
	set(u, "is_active", req.IsActive)
	set(u, "order_number", req.OrderNumber)
	return u
}
