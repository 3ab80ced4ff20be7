package dto

import "time"

type CreateEventRequest struct {
	Title           string     `json:"title" validate:"required,max=255"`
	Slug            string     `json:"slug" validate:"omitempty,max=160,slug"`
	Description     string     `json:"description" validate:"max=1000"`
	Content         string     `json:"content"`
	FeaturedImage   string     `json:"featured_image" validate:"max=500"`
	Gallery         []string   `json:"gallery" validate:"max=30,dive,required,max=500"`
	Location        string     `json:"location" validate:"max=255"`
	EventDate       time.Time  `json:"event_date" validate:"required"`
	EndDate         *time.Time `json:"end_date" validate:"omitempty,gtefield=EventDate"`
	Category        string     `json:"category" validate:"max=100"`
	Status          string     `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
	RegistrationUrl string     `json:"registration_url" validate:"omitempty,url,max=500"`
	MaxParticipants *int       `json:"max_participants" validate:"omitempty,gte=1"`
	IsFeatured      bool       `json:"is_featured"`
}

// UpdateEventRequest leaves status to the status endpoint.
type UpdateEventRequest struct {
	Title           *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Slug            *string    `json:"slug" validate:"omitempty,max=160,slug"`
	Description     *string    `json:"description" validate:"omitempty,max=1000"`
	Content         *string    `json:"content"`
	FeaturedImage   *string    `json:"featured_image" validate:"omitempty,max=500"`
	Gallery         *[]string  `json:"gallery" validate:"omitempty,max=30,dive,required,max=500"`
	Location        *string    `json:"location" validate:"omitempty,max=255"`
	EventDate       *time.Time `json:"event_date"`
	EndDate         *time.Time `json:"end_date"`
	Category        *string    `json:"category" validate:"omitempty,max=100"`
	RegistrationUrl *string    `json:"registration_url" validate:"omitempty,url,max=500"`
	MaxParticipants *int       `json:"max_participants" validate:"omitempty,gte=1"`
	IsFeatured      *bool      `json:"is_featured"`
}
