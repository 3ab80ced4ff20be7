package model

import "time"

// Value is a company core value shown on the about page.
type Value struct {
	Id          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Slug        string    `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"type:varchar(100)" json:"icon"`
	IsActive    bool      `gorm:"not null;index" json:"is_active"`
	OrderNumber int       `gorm:"not null;default:0" json:"order_number"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// "values" is a reserved word in SQL.
func (Value) TableName() string {
	return "company_values"
}
