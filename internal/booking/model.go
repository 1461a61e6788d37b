package booking

import (
	"time"

	"gorm.io/datatypes"

	"go-hotel/internal/room"
	"go-hotel/internal/user"
)

const (
	StatusBooked    = "BOOKED"
	StatusCancelled = "CANCELLED"
)

// Booking links a user to a room for a date range. Rows are never deleted
// by user action; cancellation only flips Status. They are removed in bulk
// when their room is deleted.
type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"userId"`
	User      user.User      `json:"-"`
	RoomID    uint           `gorm:"not null;index" json:"roomId"`
	Room      room.Room      `json:"room"`
	CheckIn   datatypes.Date `json:"checkIn"`
	CheckOut  datatypes.Date `json:"checkOut"`
	Status    string         `gorm:"size:16;not null;default:'BOOKED'" json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
