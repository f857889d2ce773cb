package dto

import "github.com/alumnisphere/backend/internal/app/models"

// CreateJobRequest represents a new job posting. Salary defaults to
// "Not disclosed" when omitted.
type CreateJobRequest struct {
	Title           string         `json:"title" binding:"required"`
	Company         string         `json:"company" binding:"required"`
	Location        string         `json:"location" binding:"required"`
	JobType         models.JobType `json:"jobType" binding:"required"`
	Description     string         `json:"description" binding:"required"`
	Requirements    string         `json:"requirements"`
	Salary          string         `json:"salary"`
	ApplicationLink string         `json:"applicationLink" binding:"required"`
}

// UpdateJobRequest merges the supplied fields into an existing job; nil
// means "leave unchanged". No required-field re-validation on update.
type UpdateJobRequest struct {
	Title           *string         `json:"title"`
	Company         *string         `json:"company"`
	Location        *string         `json:"location"`
	JobType         *models.JobType `json:"jobType"`
	Description     *string         `json:"description"`
	Requirements    *string         `json:"requirements"`
	Salary          *string         `json:"salary"`
	ApplicationLink *string         `json:"applicationLink"`
	IsActive        *bool           `json:"isActive"`
}

// JobResponse wraps a created or updated job with a confirmation message
type JobResponse struct {
	Message string      `json:"message"`
	Job     *models.Job `json:"job"`
}
