package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-hotel/internal/auth"
	"go-hotel/internal/booking"
	"go-hotel/internal/config"
	"go-hotel/internal/logging"
	redisdb "go-hotel/internal/redis"
	"go-hotel/internal/room"
	"go-hotel/internal/service"
	"go-hotel/internal/user"
)

var testDBSeq atomic.Int64

type testServer struct {
	router   *gin.Engine
	db       *gorm.DB
	cfg      *config.Config
	users    *service.UserService
	rooms    *service.RoomService
	bookings *service.BookingService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:api%d?mode=memory&cache=shared", testDBSeq.Add(1))
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

	mr := miniredis.RunT(t)
	cfg := &config.Config{}
	cfg.Server.JWTSecret = "test-secret"
	cfg.Session.TTLMinutes = 30
	cfg.Redis.Addr = mr.Addr()
	rdb := redisdb.NewClient(cfg)

	log := logging.Nop()
	r := SetupRouter(cfg, gdb, rdb, log, "../../frontend/*.html")

	roomSvc := service.NewRoomService(gdb, log)
	return &testServer{
		router:   r,
		db:       gdb,
		cfg:      cfg,
		users:    service.NewUserService(gdb, log),
		rooms:    roomSvc,
		bookings: service.NewBookingService(gdb, roomSvc, log),
	}
}

func (ts *testServer) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// login posts the generic login form and returns the session cookie.
func (ts *testServer) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	w := ts.postForm("/login", url.Values{"username": {username}, "password": {password}})
	if w.Code != http.StatusFound {
		t.Fatalf("login expected 302, got %d", w.Code)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName && c.Value != "" {
			return c
		}
	}
	t.Fatalf("no session cookie after login")
	return nil
}

func (ts *testServer) seedUser(t *testing.T, username, password string, role user.Role) *user.User {
	t.Helper()
	u := &user.User{Username: username, Password: password, Role: role}
	if err := ts.users.Register(u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func (ts *testServer) seedRoom(t *testing.T, kind string, price float64, capacity int) *room.Room {
	t.Helper()
	r := &room.Room{Type: kind, Price: price, Capacity: capacity, Available: true}
	if err := ts.rooms.Save(r); err != nil {
		t.Fatalf("seed room: %v", err)
	}
	return r
}
