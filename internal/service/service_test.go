package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-hotel/internal/booking"
	"go-hotel/internal/logging"
	"go-hotel/internal/room"
	"go-hotel/internal/user"
)

var testDBSeq atomic.Int64

// newTestDB opens a uniquely named shared in-memory sqlite database and
// migrates the schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", testDBSeq.Add(1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&user.User{}, &room.Room{}, &booking.Booking{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func newServices(t *testing.T) (*UserService, *RoomService, *BookingService) {
	t.Helper()
	gdb := newTestDB(t)
	log := logging.Nop()
	rooms := NewRoomService(gdb, log)
	return NewUserService(gdb, log), rooms, NewBookingService(gdb, rooms, log)
}
