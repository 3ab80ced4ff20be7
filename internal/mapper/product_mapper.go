package mapper

import (
	"strings"

	"company-profile-be/internal/dto"
	"company-profile-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) FromCreate(req *dto.CreateProductRequest) *model.Product {
	return &model.Product{
		Name:             strings.TrimSpace(req.Name),
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Category:         strings.TrimSpace(req.Category),
		ImageUrl:         req.ImageUrl,
		Price:            req.Price,
		Features:         stringList(req.Features),
		Specifications:   pairList(req.Specifications),
		IsActive:         boolOr(req.IsActive, true),
		IsFeatured:       req.IsFeatured,
		OrderNumber:      req.OrderNumber,
	}
}

func (m *ProductMapper) ToUpdates(req *dto.UpdateProductRequest) map[string]interface{} {
	u := updates{}
	setTrimmed(u, "name", req.Name)
	set(u, "slug", req.Slug)
	set(u, "short_description", req.ShortDescription)
	set(u, "description", req.Description)
	setTrimmed(u, "category", req.Category)
	set(u, "image_url", req.ImageUrl)
	set(u, "price", req.Price)
	setStrings(u, "features", req.Features)
	setPairs(u, "specifications", req.Specifications)
	set(u, "is_active", req.IsActive)
	set(u, "is_featured", req.IsFeatured)
	set(u, "order_number", req.OrderNumber)
	return u
}
