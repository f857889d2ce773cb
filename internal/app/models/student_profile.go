package models

import (
	"time"
)

// StudentProfile defines the student profile model based on the 'student_profiles' table.
// Exactly one profile may exist per user; the user_id column carries a unique index.
type StudentProfile struct {
	ID             int64      `json:"id" db:"id"`
	UserID         int64      `json:"userId" db:"user_id"`
	EnrollmentYear int        `json:"enrollmentYear" db:"enrollment_year"`
	Degree         string     `json:"degree" db:"degree"`
	Semester       int        `json:"semester" db:"semester"`
	Branch         string     `json:"branch" db:"branch"`
	Skills         []string   `json:"skills" db:"skills"`
	Interests      string     `json:"interests" db:"interests"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
	User           *UserBrief `json:"user,omitempty"` // Relation, no db tag
}
