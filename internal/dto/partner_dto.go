package dto

type CreatePartnerRequest struct {
	Name            string `json:"name" validate:"required,max=200"`
	Slug            string `json:"slug" validate:"omitempty,max=160,slug"`
	Description     string `json:"description"`
	LogoUrl         string `json:"logo_url" validate:"max=500"`
	WebsiteUrl      string `json:"website_url" validate:"omitempty,url,max=500"`
	PartnershipType string `json:"partnership_type" validate:"max=100"`
	IsActive        *bool  `json:"is_active"`
	OrderNumber     int    `json:"order_number" validate:"gte=0"`
}

type UpdatePartnerRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=200"`
	Slug            *string `json:"slug" validate:"omitempty,max=160,slug"`
	Description     *string `json:"description"`
	LogoUrl         *string `json:"logo_url" validate:"omitempty,max=500"`
	WebsiteUrl      *string `json:"website_url" validate:"omitempty,url,max=500"`
	PartnershipType *string `json:"partnership_type" validate:"omitempty,max=100"`
	IsActive        *bool   `json:"is_active"`
	OrderNumber     *int    `json:"order_number" validate:"omitempty,gte=0"`
}
