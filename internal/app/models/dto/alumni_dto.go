package dto

import "github.com/alumnisphere/backend/internal/app/models"

// UpsertAlumniProfileRequest creates or overwrites the caller's alumni
// profile. Graduation year and degree are the required subset; everything
// else defaults to its zero value.
type UpsertAlumniProfileRequest struct {
	GraduationYear  int        `json:"graduationYear" binding:"required"`
	Degree          string     `json:"degree" binding:"required"`
	CurrentCompany  string     `json:"currentCompany"`
	CurrentPosition string     `json:"currentPosition"`
	Location        string     `json:"location"`
	LinkedIn        string     `json:"linkedIn"`
	Bio             string     `json:"bio" binding:"max=500"`
	Skills          StringList `json:"skills"`
	Achievements    string     `json:"achievements"`
}

// AlumniProfileResponse wraps a saved profile with a confirmation message
type AlumniProfileResponse struct {
	Message string                `json:"message"`
	Profile *models.AlumniProfile `json:"profile"`
}
