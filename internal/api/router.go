package api

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"go-hotel/internal/auth"
	"go-hotel/internal/config"
	"go-hotel/internal/metrics"
	"go-hotel/internal/service"
	"go-hotel/internal/user"
)

// SetupRouter wires services, guards and view routes. templatesGlob points
// at the frontend templates; tests pass a path relative to their package.
func SetupRouter(cfg *config.Config, gdb *gorm.DB, rdb *redis.Client, logger *zerolog.Logger, templatesGlob string) *gin.Engine {
	users := service.NewUserService(gdb, logger)
	rooms := service.NewRoomService(gdb, logger)
	bookings := service.NewBookingService(gdb, rooms, logger)

	r := gin.Default()
	r.SetFuncMap(template.FuncMap{
		"date": func(d datatypes.Date) string { return time.Time(d).Format("2006-01-02") },
	})
	r.LoadHTMLGlob(templatesGlob)

	metrics.Register()
	r.Use(func(c *gin.Context) {
		metrics.IncHTTP(c.FullPath())
		c.Next()
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public pages
	r.GET("/", WelcomePage())
	r.GET("/register", RegisterPage())
	r.POST("/register", RegisterSubmit(users))
	r.GET("/login", LoginPage())
	r.POST("/login", LoginSubmit(cfg, rdb, users))
	r.GET("/admin/login", AdminLoginPage())
	r.POST("/admin/login", AdminLoginSubmit(cfg, rdb, users))
	r.GET("/logout", Logout(cfg, rdb))

	r.GET("/user/home", UserHome())
	r.GET("/rooms", RoomsPage(rooms))
	r.GET("/book/:roomId", BookRoomPage(rooms))
	r.GET("/cancel/:bookingId", CancelBooking(bookings))

	// Session-gated user routes
	userGuard := auth.Guard(cfg, rdb, "", "/login")
	r.POST("/book", userGuard, BookRoomSubmit(bookings))
	r.GET("/bookings", userGuard, BookingsPage(bookings))

	// Admin area: one role guard for the whole group, redirecting to the
	// dedicated admin login rather than the generic one.
	admin := r.Group("/admin", auth.Guard(cfg, rdb, user.RoleAdmin, "/admin/login"))
	{
		admin.GET("/home", AdminHome(rooms))
		admin.GET("/addRoom", AddRoomPage())
		admin.POST("/addRoom", AddRoomSubmit(rooms))
		admin.GET("/edit/:id", EditRoomPage(rooms))
		admin.POST("/edit", EditRoomSubmit(rooms))
		admin.GET("/delete/:id", DeleteRoom(rooms))
		admin.GET("/export", ExportBookings(bookings, logger))
	}

	return r
}

func redirect(c *gin.Context, target string) {
	c.Redirect(http.StatusFound, target)
}
