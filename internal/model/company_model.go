package model

import (
	"time"

	"gorm.io/datatypes"
)

// Company holds the company profile (about section, contact channels).
type Company struct {
	Id          int64                         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string                        `gorm:"type:varchar(200);not null" json:"name"`
	Slug        string                        `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	Tagline     string                        `gorm:"type:varchar(255)" json:"tagline"`
	Description string                        `gorm:"type:text" json:"description"`
	Vision      string                        `gorm:"type:text" json:"vision"`
	Mission     string                        `gorm:"type:text" json:"mission"`
	LogoUrl     string                        `gorm:"type:varchar(500)" json:"logo_url"`
	Email       string                        `gorm:"type:varchar(255)" json:"email"`
	Phone       string                        `gorm:"type:varchar(50)" json:"phone"`
	Address     string                        `gorm:"type:varchar(500)" json:"address"`
	FoundedYear *int                          `json:"founded_year"`
	SocialLinks datatypes.JSONSlice[KeyValue] `gorm:"type:jsonb" json:"social_links"`
	IsActive    bool                          `gorm:"not null;index" json:"is_active"`
	CreatedAt   time.Time                     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Company) TableName() string {
	return "company_profiles"
}
