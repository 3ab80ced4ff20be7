package model

import "time"

type Partner struct {
	Id              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"type:varchar(200);not null" json:"name"`
	Slug            string    `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	Description     string    `gorm:"type:text" json:"description"`
	LogoUrl         string    `gorm:"type:varchar(500)" json:"logo_url"`
	WebsiteUrl      string    `gorm:"type:varchar(500)" json:"website_url"`
	PartnershipType string    `gorm:"type:varchar(100);index" json:"partnership_type"` // technology, reseller, strategic
	IsActive        bool      `gorm:"not null;index" json:"is_active"`
	OrderNumber     int       `gorm:"not null;default:0" json:"order_number"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Partner) TableName() string {
	return "partners"
}
