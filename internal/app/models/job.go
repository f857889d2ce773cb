package models

import (
	"time"
)

// Job defines the job posting model based on the 'jobs' table
type Job struct {
	ID              int64      `json:"id" db:"id"`
	PostedByID      int64      `json:"postedById" db:"posted_by"`
	Title           string     `json:"title" db:"title"`
	Company         string     `json:"company" db:"company"`
	Location        string     `json:"location" db:"location"`
	JobType         JobType    `json:"jobType" db:"job_type"`
	Description     string     `json:"description" db:"description"`
	Requirements    string     `json:"requirements" db:"requirements"`
	Salary          string     `json:"salary" db:"salary"` // Defaults to "Not disclosed"
	ApplicationLink string     `json:"applicationLink" db:"application_link"`
	IsActive        bool       `json:"isActive" db:"is_active"` // Soft-visibility marker, distinct from deletion
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	PostedBy        *UserBrief `json:"postedBy,omitempty"` // Relation, no db tag
}
