package models

import (
	"time"
)

// AlumniProfile defines the alumni profile model based on the 'alumni_profiles' table.
// Exactly one profile may exist per user; the user_id column carries a unique index.
type AlumniProfile struct {
	ID              int64      `json:"id" db:"id"`
	UserID          int64      `json:"userId" db:"user_id"`
	GraduationYear  int        `json:"graduationYear" db:"graduation_year"`
	Degree          string     `json:"degree" db:"degree"`
	CurrentCompany  string     `json:"currentCompany" db:"current_company"`
	CurrentPosition string     `json:"currentPosition" db:"current_position"`
	Location        string     `json:"location" db:"location"`
	LinkedIn        string     `json:"linkedIn" db:"linkedin"`
	Bio             string     `json:"bio" db:"bio"`
	Skills          []string   `json:"skills" db:"skills"`
	Achievements    string     `json:"achievements" db:"achievements"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
	User            *UserBrief `json:"user,omitempty"` // Relation, no db tag
}
