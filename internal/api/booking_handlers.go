package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-hotel/internal/auth"
	"go-hotel/internal/metrics"
	"go-hotel/internal/service"
)

func UserHome() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "user_home.html", gin.H{"message": "Welcome to User Dashboard!"})
	}
}

func RoomsPage(rooms *service.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := rooms.All()
		if err != nil {
			c.HTML(http.StatusInternalServerError, "rooms.html", gin.H{"error": "Could not load rooms"})
			return
		}
		c.HTML(http.StatusOK, "rooms.html", gin.H{"rooms": all})
	}
}

// BookRoomPage shows the booking form for one room. A missing room id goes
// back to the room list instead of rendering an empty form.
func BookRoomPage(rooms *service.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("roomId"), 10, 64)
		if err != nil {
			redirect(c, "/rooms")
			return
		}
		r, err := rooms.ByID(uint(id))
		if err != nil {
			redirect(c, "/rooms")
			return
		}
		c.HTML(http.StatusOK, "book_room.html", gin.H{"room": r})
	}
}

// BookRoomSubmit runs behind the user guard, so an identity is always
// attached here.
func BookRoomSubmit(bookings *service.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := auth.CurrentIdentity(c)
		if !ok {
			redirect(c, "/login")
			return
		}
		roomID, err := strconv.ParseUint(c.PostForm("roomId"), 10, 64)
		if err != nil {
			redirect(c, "/rooms")
			return
		}
		_, err = bookings.Book(identity.UserID, uint(roomID), c.PostForm("checkIn"), c.PostForm("checkOut"))
		if err != nil {
			msg := "Could not create booking, check the dates"
			if errors.Is(err, service.ErrRoomNotFound) {
				msg = "Room no longer exists"
			}
			c.HTML(http.StatusOK, "book_room.html", gin.H{"error": msg})
			return
		}
		metrics.IncBookingCreated()
		redirect(c, "/bookings")
	}
}

func BookingsPage(bookings *service.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := auth.CurrentIdentity(c)
		if !ok {
			redirect(c, "/login")
			return
		}
		mine, err := bookings.ForUser(identity.UserID)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "bookings.html", gin.H{"error": "Could not load bookings"})
			return
		}
		c.HTML(http.StatusOK, "bookings.html", gin.H{"bookings": mine})
	}
}

// CancelBooking flips the status and returns to the booking list. Unknown
// ids fall through silently.
func CancelBooking(bookings *service.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := strconv.ParseUint(c.Param("bookingId"), 10, 64); err == nil {
			if err := bookings.Cancel(uint(id)); err == nil {
				metrics.IncBookingCancelled()
			}
		}
		redirect(c, "/bookings")
	}
}
