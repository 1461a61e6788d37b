package service

import "errors"

var (
	// ErrDuplicateUsername is returned by registration when the username
	// is already taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords; callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrRoomNotFound is returned for lookups of a missing room id.
	ErrRoomNotFound = errors.New("room not found")
)
