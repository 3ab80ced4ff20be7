package model

import (
	"time"

	"gorm.io/datatypes"
)

// Service is a service line offered by the company.
type Service struct {
	Id               int64                       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title            string                      `gorm:"type:varchar(200);not null" json:"title"`
	Slug             string                      `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	ShortDescription string                      `gorm:"type:varchar(500)" json:"short_description"`
	Description      string                      `gorm:"type:text" json:"description"`
	Icon             string                      `gorm:"type:varchar(100)" json:"icon"`
	ImageUrl         string                      `gorm:"type:varchar(500)" json:"image_url"`
	Features         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"features"`
	IsActive         bool                        `gorm:"not null;index" json:"is_active"`
	IsFeatured       bool                        `gorm:"not null" json:"is_featured"`
	OrderNumber      int                         `gorm:"not null;default:0" json:"order_number"`
	CreatedAt        time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Service) TableName() string {
	return "services"
}
