package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

type Event struct {
	Id              int64                       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string                      `gorm:"type:varchar(255);not null" json:"title"`
	Slug            string                      `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	Description     string                      `gorm:"type:varchar(1000)" json:"description"`
	Content         string                      `gorm:"type:text" json:"content"`
	FeaturedImage   string                      `gorm:"type:varchar(500)" json:"featured_image"`
	Gallery         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"gallery"`
	Location        string                      `gorm:"type:varchar(255)" json:"location"`
	EventDate       time.Time                   `gorm:"not null;index" json:"event_date"`
	EndDate         *time.Time                  `json:"end_date"`
	Category        string                      `gorm:"type:varchar(100);index" json:"category"`
	Status          string                      `gorm:"type:varchar(20);not null;index" json:"status"`
	RegistrationUrl string                      `gorm:"type:varchar(500)" json:"registration_url"`
	MaxParticipants *int                        `json:"max_participants"`
	IsFeatured      bool                        `gorm:"not null" json:"is_featured"`
	CreatedAt       time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}
