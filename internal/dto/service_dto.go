package dto

type CreateServiceRequest struct {
	Title            string   `json:"title" validate:"required,max=200"`
	Slug             string   `json:"slug" validate:"omitempty,max=160,slug"`
	ShortDescription string   `json:"short_description" validate:"max=500"`
	Description      string   `json:"description"`
	Icon             string   `json:"icon" validate:"max=100"`
	ImageUrl         string   `json:"image_url" validate:"max=500"`
	Features         []string `json:"features" validate:"max=50,dive,required,max=300"`
	IsActive         *bool    `json:"is_active"`
	IsFeatured       bool     `json:"is_featured"`
	OrderNumber      int      `json:"order_number" validate:"gte=0"`
}

type UpdateServiceRequest struct {
	Title            *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Slug             *string   `json:"slug" validate:"omitempty,max=160,slug"`
	ShortDescription *string   `json:"short_description" validate:"omitempty,max=500"`
	Description      *string   `json:"description"`
	Icon             *string   `json:"icon" validate:"omitempty,max=100"`
	ImageUrl         *string   `json:"image_url" validate:"omitempty,max=500"`
	Features         *[]string `json:"features" validate:"omitempty,max=50,dive,required,max=300"`
	IsActive         *bool     `json:"is_active"`
	IsFeatured       *bool     `json:"is_featured"`
	OrderNumber      *int      `json:"order_number" validate:"omitempty,gte=0"`
}
