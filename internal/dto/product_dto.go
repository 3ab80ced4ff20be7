package dto

import (
	"company-profile-be/internal/model"

	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name             string           `json:"name" validate:"required,max=200"`
	Slug             string           `json:"slug" validate:"omitempty,max=160,slug"`
	ShortDescription string           `json:"short_description" validate:"max=500"`
	Description      string           `json:"description"`
	Category         string           `json:"category" validate:"max=100"`
	ImageUrl         string           `json:"image_url" validate:"max=500"`
	Price            *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	Features         []string         `json:"features" validate:"max=50,dive,required,max=300"`
	Specifications   []model.KeyValue `json:"specifications" validate:"max=50,dive"`
	IsActive         *bool            `json:"is_active"`
	IsFeatured       bool             `json:"is_featured"`
	OrderNumber      int              `json:"order_number" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name             *string           `json:"name" validate:"omitempty,min=1,max=200"`
	Slug             *string           `json:"slug" validate:"omitempty,max=160,slug"`
	ShortDescription *string           `json:"short_description" validate:"omitempty,max=500"`
	Description      *string           `json:"description"`
	Category         *string           `json:"category" validate:"omitempty,max=100"`
	ImageUrl         *string           `json:"image_url" validate:"omitempty,max=500"`
	Price            *decimal.Decimal  `json:"price" validate:"omitempty,gte=0"`
	Features         *[]string         `json:"features" validate:"omitempty,max=50,dive,required,max=300"`
	Specifications   *[]model.KeyValue `json:"specifications" validate:"omitempty,max=50,dive"`
	IsActive         *bool             `json:"is_active"`
	IsFeatured       *bool             `json:"is_featured"`
	OrderNumber      *int              `json:"order_number" validate:"omitempty,gte=0"`
}
