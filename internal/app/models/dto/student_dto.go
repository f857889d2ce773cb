package dto

import "github.com/alumnisphere/backend/internal/app/models"

// UpsertStudentProfileRequest creates or overwrites the caller's student
// profile. Enrollment year, degree, semester and branch are required.
type UpsertStudentProfileRequest struct {
	EnrollmentYear int        `json:"enrollmentYear" binding:"required"`
	Degree         string     `json:"degree" binding:"required"`
	Semester       int        `json:"semester" binding:"required"`
	Branch         string     `json:"branch" binding:"required"`
	Skills         StringList `json:"skills"`
	Interests      string     `json:"interests"`
}

// StudentProfileResponse wraps a saved profile with a confirmation message
type StudentProfileResponse struct {
	Message string                 `json:"message"`
	Profile *models.StudentProfile `json:"profile"`
}
