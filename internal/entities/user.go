package entities

import (
	"database/sql"
	"time"
)

// User represents a user entity in the database
type User struct {
	ID                int64          `json:"id"`
	Email             string         `json:"email"`
	Username          string         `json:"username"`
	DisplayName       string         `json:"display_name"`
	ProfilePictureURL string         `json:"profile_picture_url"`
	Description       string         `json:"description"`
	PasswordHash      string         `json:"-"` // Don't expose password hash in JSON
	APIToken          sql.NullString `json:"-"` // Bearer credential, only exported via projection
	Type              string         `json:"type"`
	CreatedAt         time.Time      `json:"created_at"`
}
