package dto

import "github.com/alumnisphere/backend/internal/app/models"

// CreateMentorshipRequest asks an alumni mentor for guidance in a domain
type CreateMentorshipRequest struct {
	MentorID int64  `json:"mentorId" binding:"required"`
	Domain   string `json:"domain" binding:"required"`
	Message  string `json:"message"`
}

// UpdateMentorshipStatusRequest moves a request to a new status. Accepted
// values are accepted, rejected and completed.
type UpdateMentorshipStatusRequest struct {
	Status models.MentorshipStatus `json:"status" binding:"required"`
}

// MentorshipResponse wraps a created or updated request with a confirmation message
type MentorshipResponse struct {
	Message    string             `json:"message"`
	Mentorship *models.Mentorship `json:"mentorship"`
}
