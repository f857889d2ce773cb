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

// IStudentProfileRepository defines the interface for student profile database operations
type IStudentProfileRepository interface {
	Upsert(ctx context.Context, profile *models.StudentProfile) error
	GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
	GetAllWithOwner(ctx context.Context) ([]*models.StudentProfile, error)
}

// StudentProfileRepository handles database operations for student profiles
type StudentProfileRepository struct {
	db *pgxpool.Pool
}

// NewStudentProfileRepository creates a new StudentProfileRepository
func NewStudentProfileRepository(db *pgxpool.Pool) *StudentProfileRepository {
	return &StudentProfileRepository{
		db: db,
	}
}

// Upsert creates the profile on first submission and overwrites every field
// on resubmission, keyed by the unique user_id index.
func (r *StudentProfileRepository) Upsert(ctx context.Context, profile *models.StudentProfile) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO student_profiles
			(user_id, enrollment_year, degree, semester, branch, skills, interests)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			enrollment_year = EXCLUDED.enrollment_year,
			degree          = EXCLUDED.degree,
			semester        = EXCLUDED.semester,
			branch          = EXCLUDED.branch,
			skills          = EXCLUDED.skills,
			interests       = EXCLUDED.interests,
			updated_at      = NOW()
		RETURNING id, created_at, updated_at`,
		profile.UserID, profile.EnrollmentYear, profile.Degree,
		profile.Semester, profile.Branch, profile.Skills, profile.Interests,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error upserting student profile: %w", err)
	}

	return nil
}

const studentProfileJoinedQuery = `
	SELECT p.id, p.user_id, p.enrollment_year, p.degree, p.semester, p.branch,
	       p.skills, p.interests, p.created_at, p.updated_at,
	       u.id, u.name, u.email
	FROM student_profiles p
	LEFT JOIN users u ON u.id = p.user_id`

func scanStudentProfile(row pgx.Row) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	var ownerID *int64
	var ownerName, ownerEmail *string

	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.EnrollmentYear, &profile.Degree,
		&profile.Semester, &profile.Branch, &profile.Skills, &profile.Interests,
		&profile.CreatedAt, &profile.UpdatedAt,
		&ownerID, &ownerName, &ownerEmail,
	)
	if err != nil {
		return nil, err
	}

	if ownerID != nil {
		profile.User = &models.UserBrief{
			ID:    *ownerID,
			Name:  *ownerName,
			Email: *ownerEmail,
		}
	}

	return &profile, nil
}

// GetByUserID retrieves a profile by its owner's user id, joined with the owner
func (r *StudentProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	row := r.db.QueryRow(ctx, studentProfileJoinedQuery+` WHERE p.user_id = $1`, userID)
	profile, err := scanStudentProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}
	return profile, nil
}

// GetAllWithOwner retrieves every profile joined with its owner, most recent
// enrollment years first
func (r *StudentProfileRepository) GetAllWithOwner(ctx context.Context) ([]*models.StudentProfile, error) {
	rows, err := r.db.Query(ctx, studentProfileJoinedQuery+` ORDER BY p.enrollment_year DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.StudentProfile
	for rows.Next() {
		profile, err := scanStudentProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}
