package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Product struct {
	Id               int64                         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string                        `gorm:"type:varchar(200);not null" json:"name"`
	Slug             string                        `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	ShortDescription string                        `gorm:"type:varchar(500)" json:"short_description"`
	Description      string                        `gorm:"type:text" json:"description"`
	Category         string                        `gorm:"type:varchar(100);index" json:"category"`
	ImageUrl         string                        `gorm:"type:varchar(500)" json:"image_url"`
	Price            *decimal.Decimal              `gorm:"type:numeric(14,2)" json:"price"`
	Features         datatypes.JSONSlice[string]   `gorm:"type:jsonb" json:"features"`
	Specifications   datatypes.JSONSlice[KeyValue] `gorm:"type:jsonb" json:"specifications"`
	IsActive         bool                          `gorm:"not null;index" json:"is_active"`
	IsFeatured       bool                          `gorm:"not null" json:"is_featured"`
	OrderNumber      int                           `gorm:"not null;default:0" json:"order_number"`
	CreatedAt        time.Time                     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time                     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
