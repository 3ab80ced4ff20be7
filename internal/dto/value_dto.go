package dto

type CreateValueRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Slug        string `json:"slug" validate:"omitempty,max=160,slug"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"max=100"`
	IsActive    *bool  `json:"is_active"`
	OrderNumber int    `json:"order_number" validate:"gte=0"`
}

type UpdateValueRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Slug        *string `json:"slug" validate:"omitempty,max=160,slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon" validate:"omitempty,max=100"`
	IsActive    *bool   `json:"is_active"`
	OrderNumber *int    `json:"order_number" validate:"omitempty,gte=0"`
}
