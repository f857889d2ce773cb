package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID         int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name       string    `json:"name" db:"name" example:"Jane Doe"`                        // User's full name
	Email      string    `json:"email" db:"email" example:"jane@example.com"`              // User's email address (unique)
	Password   string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	Role       RoleType  `json:"role" db:"role" example:"alumni"`                          // User's role (student, alumni or admin)
	IsApproved bool      `json:"isApproved" db:"is_approved" example:"true"`               // Approval gate; only meaningful for alumni
	CreatedAt  time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}

// UserBrief is the owner subset embedded into joined records (name/email,
// plus the approval flag where listings need to filter on it).
type UserBrief struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsApproved *bool  `json:"isApproved,omitempty"`
}
