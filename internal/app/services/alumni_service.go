package services

import (
	"context"

	"github.com/alumnisphere/backend/internal/app/models"
	"github.com/alumnisphere/backend/internal/app/models/dto"
	"github.com/alumnisphere/backend/internal/app/repositories"
)

// AlumniService handles alumni profile management and the public directory
type AlumniService struct {
	profileRepo repositories.IAlumniProfileRepository
}

// NewAlumniService creates a new alumni service instance
func NewAlumniService(profileRepo repositories.IAlumniProfileRepository) *AlumniService {
	return &AlumniService{
		profileRepo: profileRepo,
	}
}

// UpsertProfile creates the caller's profile or overwrites it completely
func (s *AlumniService) UpsertProfile(ctx context.Context, userID int64, req *dto.UpsertAlumniProfileRequest) (*models.AlumniProfile, error) {
	profile := &models.AlumniProfile{
		UserID:          userID,
		GraduationYear:  req.GraduationYear,
		Degree:          req.Degree,
		CurrentCompany:  req.CurrentCompany,
		CurrentPosition: req.CurrentPosition,
		Location:        req.Location,
		LinkedIn:        req.LinkedIn,
		Bio:             req.Bio,
		Skills:          []string(req.Skills),
		Achievements:    req.Achievements,
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	// Re-read so the response embeds the owner {name, email}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// GetMyProfile returns the caller's own profile
func (s *AlumniService) GetMyProfile(ctx context.Context, userID int64) (*models.AlumniProfile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// ListApproved returns the public directory: profiles whose owner still
// exists and has been approved. Profiles orphaned by account deletion and
// profiles of unapproved alumni are dropped here.
func (s *AlumniService) ListApproved(ctx context.Context) ([]*models.AlumniProfile, error) {
	profiles, err := s.profileRepo.GetAllWithOwner(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]*models.AlumniProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.User == nil || p.User.IsApproved == nil || !*p.User.IsApproved {
			continue
		}
		visible = append(visible, p)
	}

	return visible, nil
}

// GetByID returns one profile by its own id, regardless of the owner's
// approval state
func (s *AlumniService) GetByID(ctx context.Context, id int64) (*models.AlumniProfile, error) {
	return s.profileRepo.GetByID(ctx, id)
}
