package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumnisphere/backend/internal/app/models"
	"github.com/alumnisphere/backend/internal/pkg/apperrors"
)

// IJobRepository defines the interface for job database operations
type IJobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	GetActive(ctx context.Context) ([]*models.Job, error)
	GetByPoster(ctx context.Context, posterID int64) ([]*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id int64) error
}

// JobRepository handles database operations for job postings
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
	}
}

// Create persists a new job posting
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO jobs
			(posted_by, title, company, location, job_type, description,
			 requirements, salary, application_link, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		job.PostedByID, job.Title, job.Company, job.Location, job.JobType,
		job.Description, job.Requirements, job.Salary, job.ApplicationLink,
		job.IsActive,
	).Scan(&job.ID, &job.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating job: %w", err)
	}

	return nil
}

const jobJoinedQuery = `
	SELECT j.id, j.posted_by, j.title, j.company, j.location, j.job_type,
	       j.description, j.requirements, j.salary, j.application_link,
	       j.is_active, j.created_at,
	       u.id, u.name, u.email
	FROM jobs j
	LEFT JOIN users u ON u.id = j.posted_by`

func scanJob(row pgx.Row) (*models.Job, error) {
	var job models.Job
	var posterID *int64
	var posterName, posterEmail *string

	err := row.Scan(
		&job.ID, &job.PostedByID, &job.Title, &job.Company, &job.Location,
		&job.JobType, &job.Description, &job.Requirements, &job.Salary,
		&job.ApplicationLink, &job.IsActive, &job.CreatedAt,
		&posterID, &posterName, &posterEmail,
	)
	if err != nil {
		return nil, err
	}

	if posterID != nil {
		job.PostedBy = &models.UserBrief{
			ID:    *posterID,
			Name:  *posterName,
			Email: *posterEmail,
		}
	}

	return &job, nil
}

// GetByID retrieves a job by ID, joined with its poster. No active filter is
// applied here; inactive jobs stay fetchable by direct id.
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	row := r.db.QueryRow(ctx, jobJoinedQuery+` WHERE j.id = $1`, id)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}
	return job, nil
}

// GetActive retrieves all active jobs joined with their posters, newest first
func (r *JobRepository) GetActive(ctx context.Context) ([]*models.Job, error) {
	rows, err := r.db.Query(ctx, jobJoinedQuery+` WHERE j.is_active ORDER BY j.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// GetByPoster retrieves every job by one poster regardless of active flag,
// newest first
func (r *JobRepository) GetByPoster(ctx context.Context, posterID int64) ([]*models.Job, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, posted_by, title, company, location, job_type, description,
		       requirements, salary, application_link, is_active, created_at
		FROM jobs
		WHERE posted_by = $1
		ORDER BY created_at DESC`, posterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		var job models.Job
		if err := rows.Scan(
			&job.ID, &job.PostedByID, &job.Title, &job.Company, &job.Location,
			&job.JobType, &job.Description, &job.Requirements, &job.Salary,
			&job.ApplicationLink, &job.IsActive, &job.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, &job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// Update overwrites the mutable columns of a job. The service merges the
// request fields into the loaded record before calling this.
func (r *JobRepository) Update(ctx context.Context, job *models.Job) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE jobs
		SET title = $1, company = $2, location = $3, job_type = $4,
		    description = $5, requirements = $6, salary = $7,
		    application_link = $8, is_active = $9
		WHERE id = $10`,
		job.Title, job.Company, job.Location, job.JobType, job.Description,
		job.Requirements, job.Salary, job.ApplicationLink, job.IsActive, job.ID)

	if err != nil {
		return fmt.Errorf("error updating job: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// Delete hard-deletes a job posting
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting job: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}
