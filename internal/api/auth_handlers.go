package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"go-hotel/internal/auth"
	"go-hotel/internal/config"
	"go-hotel/internal/service"
	"go-hotel/internal/user"
)

func WelcomePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "welcome.html", gin.H{})
	}
}

func RegisterPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", gin.H{})
	}
}

// RegisterSubmit creates the account and sends the user to the login page.
// A taken username re-renders the form with the error.
func RegisterSubmit(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := &user.User{
			Username: c.PostForm("username"),
			Password: c.PostForm("password"),
			Role:     user.RoleUser,
		}
		if err := users.Register(u); err != nil {
			msg := "Registration failed"
			if errors.Is(err, service.ErrDuplicateUsername) {
				msg = "Username already exists!"
			}
			c.HTML(http.StatusOK, "register.html", gin.H{"error": msg})
			return
		}
		redirect(c, "/login")
	}
}

func LoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{})
	}
}

// startSession mints a session id, stores it in redis and hands the signed
// token to the browser as a cookie.
func startSession(c *gin.Context, cfg *config.Config, rdb *redis.Client, u *user.User) error {
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	sid := auth.NewSessionID()
	token, err := auth.GenerateJWT(cfg.Server.JWTSecret, u.ID, u.Username, string(u.Role), sid, ttl)
	if err != nil {
		return err
	}
	if err := auth.SetSession(rdb, sid, token, ttl); err != nil {
		return err
	}
	c.SetCookie(auth.CookieName, token, int(ttl.Seconds()), "/", "", false, true)
	return nil
}

// LoginSubmit handles the generic login used by both roles. Admins land on
// the admin home, everyone else on the user home.
func LoginSubmit(cfg *config.Config, rdb *redis.Client, users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := users.Login(c.PostForm("username"), c.PostForm("password"))
		if err != nil {
			c.HTML(http.StatusOK, "login.html", gin.H{"error": "Invalid username or password"})
			return
		}
		if err := startSession(c, cfg, rdb, u); err != nil {
			c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": "Login failed, try again"})
			return
		}
		if u.Role == user.RoleAdmin {
			redirect(c, "/admin/home")
			return
		}
		redirect(c, "/user/home")
	}
}

func AdminLoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin_login.html", gin.H{})
	}
}

// AdminLoginSubmit accepts only ADMIN-role credentials. Correct USER
// credentials fail here exactly like a wrong password.
func AdminLoginSubmit(cfg *config.Config, rdb *redis.Client, users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := users.Login(c.PostForm("username"), c.PostForm("password"))
		if err != nil || u.Role != user.RoleAdmin {
			c.HTML(http.StatusOK, "admin_login.html", gin.H{"error": "Invalid credentials or unauthorized user."})
			return
		}
		if err := startSession(c, cfg, rdb, u); err != nil {
			c.HTML(http.StatusInternalServerError, "admin_login.html", gin.H{"error": "Login failed, try again"})
			return
		}
		redirect(c, "/admin/home")
	}
}

// Logout drops the server-side session and expires the cookie, then sends
// the browser to the login page.
func Logout(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, err := c.Cookie(auth.CookieName); err == nil && tokenStr != "" {
			if claims, err := auth.ParseJWT(cfg.Server.JWTSecret, tokenStr); err == nil {
				_ = auth.DeleteSession(rdb, claims.SessionID)
			}
		}
		c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
		redirect(c, "/login")
	}
}
