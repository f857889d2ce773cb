package dto

import "github.com/alumnisphere/backend/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a user registration request. Only student and
// alumni accounts can self-register; the admin account is seeded.
type RegisterRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.RoleType `json:"role" binding:"required"`
}

// UserSummary represents basic user information returned by auth and admin
// endpoints (never includes the password hash)
type UserSummary struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       models.RoleType `json:"role"`
	IsApproved bool            `json:"isApproved"`
}

// NewUserSummary shapes a user record into its public summary
func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		IsApproved: u.IsApproved,
	}
}

// AuthResponse represents a successful registration or login
type AuthResponse struct {
	Message   string      `json:"message"`
	Token     string      `json:"token,omitempty"`
	ExpiresIn int         `json:"expiresIn,omitempty"`
	User      UserSummary `json:"user"`
}
