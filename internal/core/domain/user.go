package domain

import (
	"errors"
	"time"
)

var (
	ErrUserExists         = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameEmpty      = errors.New("username cannot be empty")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

// User models a registered account. Accounts are created once at
// registration and never mutated or deleted by the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
