package dto

import "time"

type CreateCareerRequest struct {
	Title               string     `json:"title" validate:"required,max=200"`
	Slug                string     `json:"slug" validate:"omitempty,max=160,slug"`
	Department          string     `json:"department" validate:"max=100"`
	Location            string     `json:"location" validate:"max=200"`
	EmploymentType      string     `json:"employment_type" validate:"omitempty,oneof=full-time part-time contract internship"`
	ExperienceLevel     string     `json:"experience_level" validate:"max=50"`
	Description         string     `json:"description"`
	Responsibilities    []string   `json:"responsibilities" validate:"max=50,dive,required,max=500"`
	Requirements        []string   `json:"requirements" validate:"max=50,dive,required,max=500"`
	Benefits            []string   `json:"benefits" validate:"max=50,dive,required,max=500"`
	SalaryRange         string     `json:"salary_range" validate:"max=100"`
	Status              string     `json:"status" validate:"omitempty,oneof=open closed draft"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	IsFeatured          bool       `json:"is_featured"`
}

// UpdateCareerRequest leaves status to the status endpoint.
type UpdateCareerRequest struct {
	Title               *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Slug                *string    `json:"slug" validate:"omitempty,max=160,slug"`
	Department          *string    `json:"department" validate:"omitempty,max=100"`
	Location            *string    `json:"location" validate:"omitempty,max=200"`
	EmploymentType      *string    `json:"employment_type" validate:"omitempty,oneof=full-time part-time contract internship"`
	ExperienceLevel     *string    `json:"experience_level" validate:"omitempty,max=50"`
	Description         *string    `json:"description"`
	Responsibilities    *[]string  `json:"responsibilities" validate:"omitempty,max=50,dive,required,max=500"`
	Requirements        *[]string  `json:"requirements" validate:"omitempty,max=50,dive,required,max=500"`
	Benefits            *[]string  `json:"benefits" validate:"omitempty,max=50,dive,required,max=500"`
	SalaryRange         *string    `json:"salary_range" validate:"omitempty,max=100"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	IsFeatured          *bool      `json:"is_featured"`
}
