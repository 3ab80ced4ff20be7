package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	CareerStatusOpen   = "open"
	CareerStatusClosed = "closed"
	CareerStatusDraft  = "draft"
)

// Career is a job opening.
type Career struct {
	Id                  int64                       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title               string                      `gorm:"type:varchar(200);not null" json:"title"`
	Slug                string                      `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	Department          string                      `gorm:"type:varchar(100);index" json:"department"`
	Location            string                      `gorm:"type:varchar(200)" json:"location"`
	EmploymentType      string                      `gorm:"type:varchar(30);index" json:"employment_type"` // full-time, part-time, contract, internship
	ExperienceLevel     string                      `gorm:"type:varchar(50)" json:"experience_level"`
	Description         string                      `gorm:"type:text" json:"description"`
	Responsibilities    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"responsibilities"`
	Requirements        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"requirements"`
	Benefits            datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"benefits"`
	SalaryRange         string                      `gorm:"type:varchar(100)" json:"salary_range"`
	Status              string                      `gorm:"type:varchar(20);not null;index" json:"status"`
	ApplicationDeadline *time.Time                  `json:"application_deadline"`
	IsFeatured          bool                        `gorm:"not null" json:"is_featured"`
	Views               int64                       `gorm:"not null;default:0" json:"views"`
	CreatedAt           time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Career) TableName() string {
	return "careers"
}
