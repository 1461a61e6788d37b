package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"go-hotel/internal/booking"
)

const dateLayout = "2006-01-02"

type BookingService struct {
	db     *gorm.DB
	rooms  *RoomService
	logger *zerolog.Logger
}

func NewBookingService(db *gorm.DB, rooms *RoomService, logger *zerolog.Logger) *BookingService {
	return &BookingService{db: db, rooms: rooms, logger: logger}
}

// Book creates a booking for the given user and room. The room must exist;
// a missing id fails with ErrRoomNotFound rather than storing a dangling
// reference. Date strings use the 2006-01-02 layout. Overlapping date
// ranges for the same room are not rejected.
func (s *BookingService) Book(userID, roomID uint, checkIn, checkOut string) (*booking.Booking, error) {
	r, err := s.rooms.ByID(roomID)
	if err != nil {
		return nil, err
	}

	inDate, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return nil, fmt.Errorf("parse check-in date: %w", err)
	}
	outDate, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return nil, fmt.Errorf("parse check-out date: %w", err)
	}

	b := &booking.Booking{
		UserID:   userID,
		RoomID:   r.ID,
		CheckIn:  datatypes.Date(inDate),
		CheckOut: datatypes.Date(outDate),
		Status:   booking.StatusBooked,
	}
	if err := s.db.Create(b).Error; err != nil {
		return nil, err
	}
	s.logger.Info().Uint("bookingId", b.ID).Uint("roomId", r.ID).Uint("userId", userID).Msg("booking created")
	return b, nil
}

// ForUser lists the user's bookings with the room preloaded. Order is not
// guaranteed.
func (s *BookingService) ForUser(userID uint) ([]booking.Booking, error) {
	var bookings []booking.Booking
	if err := s.db.Preload("Room").Where("user_id = ?", userID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Cancel flips the booking status to CANCELLED. A missing id is a silent
// no-op; nothing is created or modified.
func (s *BookingService) Cancel(id uint) error {
	var b booking.Booking
	if err := s.db.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	b.Status = booking.StatusCancelled
	if err := s.db.Save(&b).Error; err != nil {
		return err
	}
	s.logger.Info().Uint("bookingId", id).Msg("booking cancelled")
	return nil
}

// All lists every booking with user and room preloaded, for the admin
// report.
func (s *BookingService) All() ([]booking.Booking, error) {
	var bookings []booking.Booking
	if err := s.db.Preload("Room").Preload("User").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
