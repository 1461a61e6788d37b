package room

import (
	"time"
)

// Room is an inventory row managed through the admin area.
type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"size:64;not null" json:"type"`
	Price     float64   `gorm:"not null" json:"price"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	Available bool      `gorm:"not null;default:true" json:"available"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
