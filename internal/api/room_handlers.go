package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-hotel/internal/room"
	"go-hotel/internal/service"
)

// roomFromForm reads the room fields from a submitted form. The available
// checkbox defaults to true when the field is omitted entirely.
func roomFromForm(c *gin.Context) (*room.Room, error) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		return nil, err
	}
	capacity, err := strconv.Atoi(c.PostForm("capacity"))
	if err != nil {
		return nil, err
	}
	available := true
	if raw, ok := c.GetPostForm("available"); ok {
		available = raw == "true" || raw == "on" || raw == "1"
	}
	return &room.Room{
		Type:      c.PostForm("type"),
		Price:     price,
		Capacity:  capacity,
		Available: available,
	}, nil
}

func AdminHome(rooms *service.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := rooms.All()
		if err != nil {
			c.HTML(http.StatusInternalServerError, "admin_home.html", gin.H{"error": "Could not load rooms"})
			return
		}
		c.HTML(http.StatusOK, "admin_home.html", gin.H{"rooms": all})
	}
}

func AddRoomPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "add_room.html", gin.H{"room": &room.Room{Available: true}})
	}
}

func AddRoomSubmit(rooms *service.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := roomFromForm(c)
		if err != nil {
			c.HTML(http.StatusOK, "add_room.html", gin.H{"error": "Price and capacity must be numbers"})
			return
		}
		if err := rooms.Save(r); err != nil {
			c.HTML(http.StatusInternalServerError, "add_room.html", gin.H{"error": "Could not save room"})
			return
		}
		redirect(c, "/admin/home")
	}
}

func EditRoomPage(rooms *service.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			redirect(c, "/admin/home")
			return
		}
		r, err := rooms.ByID(uint(id))
		if err != nil {
			redirect(c, "/admin/home")
			return
		}
		c.HTML(http.StatusOK, "edit_room.html", gin.H{"room": r})
	}
}

// EditRoomSubmit reuses the same upsert as creation: the submitted id picks
// the row to overwrite.
func EditRoomSubmit(rooms *service.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.PostForm("id"), 10, 64)
		if err != nil {
			redirect(c, "/admin/home")
			return
		}
		r, err := roomFromForm(c)
		if err != nil {
			c.HTML(http.StatusOK, "edit_room.html", gin.H{"error": "Price and capacity must be numbers"})
			return
		}
		r.ID = uint(id)
		if err := rooms.Save(r); err != nil {
			c.HTML(http.StatusInternalServerError, "edit_room.html", gin.H{"error": "Could not save room"})
			return
		}
		redirect(c, "/admin/home")
	}
}

// DeleteRoom removes the room and its bookings in one unit of work.
func DeleteRoom(rooms *service.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := strconv.ParseUint(c.Param("id"), 10, 64); err == nil {
			_ = rooms.Delete(uint(id))
		}
		redirect(c, "/admin/home")
	}
}
