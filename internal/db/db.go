package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"go-hotel/internal/booking"
	"go-hotel/internal/config"
	"go-hotel/internal/room"
	"go-hotel/internal/user"
)

var DB *gorm.DB

// Init opens the postgres connection and migrates the schema.
func Init(cfg *config.Config) error {
	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{})
	if err != nil {
		return err
	}
	if err := Migrate(db); err != nil {
		return err
	}
	DB = db
	return nil
}

// Migrate creates or updates the users, rooms and bookings tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&user.User{}, &room.Room{}, &booking.Booking{})
}
