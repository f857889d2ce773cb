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

// IAlumniProfileRepository defines the interface for alumni profile database operations
type IAlumniProfileRepository interface {
	Upsert(ctx context.Context, profile *models.AlumniProfile) error
	GetByUserID(ctx context.Context, userID int64) (*models.AlumniProfile, error)
	GetByID(ctx context.Context, id int64) (*models.AlumniProfile, error)
	GetAllWithOwner(ctx context.Context) ([]*models.AlumniProfile, error)
}

// AlumniProfileRepository handles database operations for alumni profiles
type AlumniProfileRepository struct {
	db *pgxpool.Pool
}

// NewAlumniProfileRepository creates a new AlumniProfileRepository
func NewAlumniProfileRepository(db *pgxpool.Pool) *AlumniProfileRepository {
	return &AlumniProfileRepository{
		db: db,
	}
}

// Upsert creates the profile on first submission and overwrites every field
// on resubmission. The unique index on user_id makes the create-or-update
// atomic, so two concurrent first-time submissions cannot both insert.
func (r *AlumniProfileRepository) Upsert(ctx context.Context, profile *models.AlumniProfile) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO alumni_profiles
			(user_id, graduation_year, degree, current_company, current_position,
			 location, linkedin, bio, skills, achievements)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			graduation_year  = EXCLUDED.graduation_year,
			degree           = EXCLUDED.degree,
			current_company  = EXCLUDED.current_company,
			current_position = EXCLUDED.current_position,
			location         = EXCLUDED.location,
			linkedin         = EXCLUDED.linkedin,
			bio              = EXCLUDED.bio,
			skills           = EXCLUDED.skills,
			achievements     = EXCLUDED.achievements,
			updated_at       = NOW()
		RETURNING id, created_at, updated_at`,
		profile.UserID, profile.GraduationYear, profile.Degree,
		profile.CurrentCompany, profile.CurrentPosition, profile.Location,
		profile.LinkedIn, profile.Bio, profile.Skills, profile.Achievements,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error upserting alumni profile: %w", err)
	}

	return nil
}

const alumniProfileJoinedQuery = `
	SELECT p.id, p.user_id, p.graduation_year, p.degree, p.current_company,
	       p.current_position, p.location, p.linkedin, p.bio, p.skills,
	       p.achievements, p.created_at, p.updated_at,
	       u.id, u.name, u.email, u.is_approved
	FROM alumni_profiles p
	LEFT JOIN users u ON u.id = p.user_id`

// scanAlumniProfile scans one joined row. The owner may have been deleted,
// in which case the relation stays nil.
func scanAlumniProfile(row pgx.Row) (*models.AlumniProfile, error) {
	var profile models.AlumniProfile
	var ownerID *int64
	var ownerName, ownerEmail *string
	var ownerApproved *bool

	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.GraduationYear, &profile.Degree,
		&profile.CurrentCompany, &profile.CurrentPosition, &profile.Location,
		&profile.LinkedIn, &profile.Bio, &profile.Skills, &profile.Achievements,
		&profile.CreatedAt, &profile.UpdatedAt,
		&ownerID, &ownerName, &ownerEmail, &ownerApproved,
	)
	if err != nil {
		return nil, err
	}

	if ownerID != nil {
		profile.User = &models.UserBrief{
			ID:         *ownerID,
			Name:       *ownerName,
			Email:      *ownerEmail,
			IsApproved: ownerApproved,
		}
	}

	return &profile, nil
}

// GetByUserID retrieves a profile by its owner's user id, joined with the owner
func (r *AlumniProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.AlumniProfile, error) {
	row := r.db.QueryRow(ctx, alumniProfileJoinedQuery+` WHERE p.user_id = $1`, userID)
	profile, err := scanAlumniProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving alumni profile: %w", err)
	}
	return profile, nil
}

// GetByID retrieves a profile by its own id, joined with the owner
func (r *AlumniProfileRepository) GetByID(ctx context.Context, id int64) (*models.AlumniProfile, error) {
	row := r.db.QueryRow(ctx, alumniProfileJoinedQuery+` WHERE p.id = $1`, id)
	profile, err := scanAlumniProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving alumni profile: %w", err)
	}
	return profile, nil
}

// GetAllWithOwner retrieves every profile joined with its owner, most recent
// graduates first. Approval filtering happens in the service layer.
func (r *AlumniProfileRepository) GetAllWithOwner(ctx context.Context) ([]*models.AlumniProfile, error) {
	rows, err := r.db.Query(ctx, alumniProfileJoinedQuery+` ORDER BY p.graduation_year DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.AlumniProfile
	for rows.Next() {
		profile, err := scanAlumniProfile(rows)
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
