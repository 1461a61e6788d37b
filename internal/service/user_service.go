package service

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"go-hotel/internal/user"
)

type UserService struct {
	db     *gorm.DB
	logger *zerolog.Logger
}

func NewUserService(db *gorm.DB, logger *zerolog.Logger) *UserService {
	return &UserService{db: db, logger: logger}
}

// Register persists a new account. Fails with ErrDuplicateUsername when the
// username is taken; the existing row is left untouched.
func (s *UserService) Register(u *user.User) error {
	var existing user.User
	err := s.db.Where("username = ?", u.Username).First(&existing).Error
	if err == nil {
		return ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if u.Role == "" {
		u.Role = user.RoleUser
	}
	if err := s.db.Create(u).Error; err != nil {
		return err
	}
	s.logger.Info().Str("username", u.Username).Str("role", string(u.Role)).Msg("user registered")
	return nil
}

// Login trims both inputs and checks the password with an exact,
// case-sensitive comparison. Passwords are unhashed here on purpose; this
// mirrors the system being replaced and is not secure.
func (s *UserService) Login(username, password string) (*user.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	var u user.User
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if u.Password != password {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}
