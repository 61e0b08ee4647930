package model

import (
	"fmt"
	"strings"
	"time"
)

// User represents a registered dashboard user.
//
// Passwords are stored and compared in plain text on purpose, the tool keeps
// the original system's local-only credential model and hardening it is out
// of scope.
type User struct {
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}

// Validate validates a user record before registration.
func (u *User) Validate() error {
	if u.Name == "" {
		return fmt.Errorf("name is required: %w", ErrNotValid)
	}
	if u.Email == "" {
		return fmt.Errorf("email is required: %w", ErrNotValid)
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("email %q is not an email address: %w", u.Email, ErrNotValid)
	}
	if u.Password == "" {
		return fmt.Errorf("password is required: %w", ErrNotValid)
	}
	return nil
}
