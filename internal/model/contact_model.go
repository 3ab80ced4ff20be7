package model

import "time"

const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
	ContactStatusClosed  = "closed"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	Id        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string     `gorm:"type:varchar(150);not null" json:"name"`
	Email     string     `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone     string     `gorm:"type:varchar(50)" json:"phone"`
	Company   string     `gorm:"type:varchar(200)" json:"company"`
	Subject   string     `gorm:"type:varchar(255);not null" json:"subject"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	Status    string     `gorm:"type:varchar(20);not null;index" json:"status"`
	Notes     string     `gorm:"type:text" json:"notes"`
	RepliedBy *string    `gorm:"type:varchar(255)" json:"replied_by"`
	RepliedAt *time.Time `json:"replied_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Contact) TableName() string {
	return "contacts"
}
