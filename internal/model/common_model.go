package model

import "time"

// KeyValue is one entry of an ordered key/value list stored as JSONB
// (product specifications, social links).
type KeyValue struct {
	Key   string `json:"key" validate:"required,max=100"`
	Value string `json:"value" validate:"max=1000"`
}

// RetiredSlug remembers slugs of deleted records so they are never handed out again.
type RetiredSlug struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Resource  string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_retired_slugs_resource_slug"`
	Slug      string    `gorm:"type:varchar(160);not null;uniqueIndex:idx_retired_slugs_resource_slug"`
	RetiredAt time.Time `gorm:"autoCreateTime"`
}

func (RetiredSlug) TableName() string {
	return "retired_slugs"
}
