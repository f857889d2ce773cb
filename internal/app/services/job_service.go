package services

import (
	"context"

	"github.com/alumnisphere/backend/internal/app/models"
	"github.com/alumnisphere/backend/internal/app/models/dto"
	"github.com/alumnisphere/backend/internal/app/repositories"
	"github.com/alumnisphere/backend/internal/pkg/apperrors"
)

// defaultSalary is shown when a poster leaves the salary field empty
const defaultSalary = "Not disclosed"

// JobService handles the job board
type JobService struct {
	jobRepo repositories.IJobRepository
}

// NewJobService creates a new job service instance
func NewJobService(jobRepo repositories.IJobRepository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
	}
}

// Create posts a new job on behalf of the given poster
func (s *JobService) Create(ctx context.Context, posterID int64, req *dto.CreateJobRequest) (*models.Job, error) {
	if !models.ValidJobType(req.JobType) {
		return nil, apperrors.NewValidationError("Invalid job type")
	}

	salary := req.Salary
	if salary == "" {
		salary = defaultSalary
	}

	job := &models.Job{
		PostedByID:      posterID,
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		JobType:         req.JobType,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Salary:          salary,
		ApplicationLink: req.ApplicationLink,
		IsActive:        true,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	// Re-read so the response embeds the poster {name, email}
	return s.jobRepo.GetByID(ctx, job.ID)
}

// ListActive returns all active postings, newest first
func (s *JobService) ListActive(ctx context.Context) ([]*models.Job, error) {
	return s.jobRepo.GetActive(ctx)
}

// GetByID returns one posting regardless of its active flag
func (s *JobService) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

// ListMine returns every posting of the caller, active or not
func (s *JobService) ListMine(ctx context.Context, posterID int64) ([]*models.Job, error) {
	return s.jobRepo.GetByPoster(ctx, posterID)
}

// Update merges the supplied fields into an existing posting. Only the
// poster may update; fields left out of the request keep their values.
func (s *JobService) Update(ctx context.Context, id, callerID int64, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if job.PostedByID != callerID {
		return nil, apperrors.NewForbiddenError("You can only update your own job postings")
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.ApplicationLink != nil {
		job.ApplicationLink = *req.ApplicationLink
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// Delete removes a posting. The poster or an admin may delete.
func (s *JobService) Delete(ctx context.Context, id, callerID int64, callerRole models.RoleType) error {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if job.PostedByID != callerID && callerRole != models.RoleAdmin {
		return apperrors.NewForbiddenError("You can only delete your own job postings")
	}

	return s.jobRepo.Delete(ctx, id)
}
