package models

import (
	"time"
)

// Todo is a single todo item. The owning user is fixed at creation and
// never changes afterwards. Deletes are hard deletes.
type Todo struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
