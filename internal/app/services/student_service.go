package services

import (
	"context"

	"github.com/alumnisphere/backend/internal/app/models"
	"github.com/alumnisphere/backend/internal/app/models/dto"
	"github.com/alumnisphere/backend/internal/app/repositories"
)

// StudentService handles student profile management
type StudentService struct {
	profileRepo repositories.IStudentProfileRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(profileRepo repositories.IStudentProfileRepository) *StudentService {
	return &StudentService{
		profileRepo: profileRepo,
	}
}

// UpsertProfile creates the caller's profile or overwrites it completely
func (s *StudentService) UpsertProfile(ctx context.Context, userID int64, req *dto.UpsertStudentProfileRequest) (*models.StudentProfile, error) {
	profile := &models.StudentProfile{
		UserID:         userID,
		EnrollmentYear: req.EnrollmentYear,
		Degree:         req.Degree,
		Semester:       req.Semester,
		Branch:         req.Branch,
		Skills:         []string(req.Skills),
		Interests:      req.Interests,
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	// Re-read so the response embeds the owner {name, email}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// GetMyProfile returns the caller's own profile
func (s *StudentService) GetMyProfile(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// ListAll returns every student profile, most recent enrollment years first
func (s *StudentService) ListAll(ctx context.Context) ([]*models.StudentProfile, error) {
	return s.profileRepo.GetAllWithOwner(ctx)
}
