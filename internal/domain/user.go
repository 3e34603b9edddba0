package domain

import (
	"errors"
	"time"
)

var (
	ErrMissingFields      = errors.New("missing fields")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenInvalid       = errors.New("token is invalid or expired")
)

// User is an account holder. PasswordHash is only populated on the
// registration/login path; the auth middleware loads users without it.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	// IsAdmin is stored and echoed back but no authorization rule
	// currently branches on it.
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
