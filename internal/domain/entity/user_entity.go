package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Passwords are stored only as bcrypt digests in PasswordHash; plaintext
// never leaves the registration/login request.
type User struct {
	ID             string
	Username       string
	Email          string
	PasswordHash   string
	Birthday       *time.Time
	FavoriteMovies []string // movie ids
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
