package service

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"go-hotel/internal/booking"
	"go-hotel/internal/room"
)

type RoomService struct {
	db     *gorm.DB
	logger *zerolog.Logger
}

func NewRoomService(db *gorm.DB, logger *zerolog.Logger) *RoomService {
	return &RoomService{db: db, logger: logger}
}

// Save is an upsert: a zero ID inserts a new row, a non-zero ID overwrites
// that row entirely. Create and edit both go through here.
func (s *RoomService) Save(r *room.Room) error {
	if err := s.db.Save(r).Error; err != nil {
		return err
	}
	s.logger.Info().Uint("roomId", r.ID).Str("type", r.Type).Msg("room saved")
	return nil
}

func (s *RoomService) All() ([]room.Room, error) {
	var rooms []room.Room
	if err := s.db.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// ByID returns ErrRoomNotFound for a missing id; callers handle the error
// explicitly instead of receiving a nil room.
func (s *RoomService) ByID(id uint) (*room.Room, error) {
	var r room.Room
	if err := s.db.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &r, nil
}

// Delete removes every booking referencing the room, then the room row,
// in one transaction. Either both are gone or neither is.
func (s *RoomService) Delete(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&booking.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&room.Room{}, id).Error
	})
	if err != nil {
		return err
	}
	s.logger.Info().Uint("roomId", id).Msg("room deleted with its bookings")
	return nil
}
