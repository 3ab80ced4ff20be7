package model

import (
	"time"

	"gorm.io/datatypes"
)

type News struct {
	Id            int64                       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string                      `gorm:"type:varchar(255);not null" json:"title"`
	Slug          string                      `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	Excerpt       string                      `gorm:"type:varchar(500)" json:"excerpt"`
	Content       string                      `gorm:"type:text" json:"content"`
	FeaturedImage string                      `gorm:"type:varchar(500)" json:"featured_image"`
	Category      string                      `gorm:"type:varchar(100);index" json:"category"`
	Tags          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	Author        string                      `gorm:"type:varchar(150)" json:"author"`
	IsPublished   bool                        `gorm:"not null;index" json:"is_published"`
	IsFeatured    bool                        `gorm:"not null" json:"is_featured"`
	PublishedDate *time.Time                  `json:"published_date"`
	Views         int64                       `gorm:"not null;default:0" json:"views"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (News) TableName() string {
	return "news"
}
