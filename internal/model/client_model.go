package model

import "time"

type Client struct {
	Id          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Slug        string    `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	Industry    string    `gorm:"type:varchar(100);index" json:"industry"`
	Description string    `gorm:"type:text" json:"description"`
	LogoUrl     string    `gorm:"type:varchar(500)" json:"logo_url"`
	WebsiteUrl  string    `gorm:"type:varchar(500)" json:"website_url"`
	Testimonial string    `gorm:"type:text" json:"testimonial"`
	IsActive    bool      `gorm:"not null;index" json:"is_active"`
	IsFeatured  bool      `gorm:"not null" json:"is_featured"`
	OrderNumber int       `gorm:"not null;default:0" json:"order_number"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Client) TableName() string {
	return "clients"
}
