package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserRoleAdmin  = "admin"
	UserRoleEditor = "editor"
)

// User is a back-office account allowed to manage content.
type User struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	FullName     string     `gorm:"type:varchar(150);not null"`
	Role         string     `gorm:"type:varchar(20);not null"`
	IsActive     bool       `gorm:"not null"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
