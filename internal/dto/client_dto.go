package dto

type CreateClientRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Slug        string `json:"slug" validate:"omitempty,max=160,slug"`
	Industry    string `json:"industry" validate:"max=100"`
	Description string `json:"description"`
	LogoUrl     string `json:"logo_url" validate:"max=500"`
	WebsiteUrl  string `json:"website_url" validate:"omitempty,url,max=500"`
	Testimonial string `json:"testimonial"`
	IsActive    *bool  `json:"is_active"`
	IsFeatured  bool   `json:"is_featured"`
	OrderNumber int    `json:"order_number" validate:"gte=0"`
}

type UpdateClientRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Slug        *string `json:"slug" validate:"omitempty,max=160,slug"`
	Industry    *string `json:"industry" validate:"omitempty,max=100"`
	Description *string `json:"description"`
	LogoUrl     *string `json:"logo_url" validate:"omitempty,max=500"`
	WebsiteUrl  *string `json:"website_url" validate:"omitempty,url,max=500"`
	Testimonial *string `json:"testimonial"`
	IsActive    *bool   `json:"is_active"`
	IsFeatured  *bool   `json:"is_featured"`
	OrderNumber *int    `json:"order_number" validate:"omitempty,gte=0"`
}
