package services

import (
	"context"

	"github.com/alumnisphere/backend/internal/app/models"
	"github.com/alumnisphere/backend/internal/app/repositories"
	"github.com/alumnisphere/backend/internal/pkg/apperrors"
	"github.com/alumnisphere/backend/internal/pkg/logger"
)

// AdminService handles user administration and alumni approval
type AdminService struct {
	userRepo repositories.IUserRepository
}

// NewAdminService creates a new admin service instance
func NewAdminService(userRepo repositories.IUserRepository) *AdminService {
	return &AdminService{
		userRepo: userRepo,
	}
}

// ListUsers returns every account, newest first
func (s *AdminService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// ApproveAlumni marks an alumni account approved. Approving an already
// approved account succeeds and changes nothing.
func (s *AdminService) ApproveAlumni(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role != models.RoleAlumni {
		return nil, apperrors.NewInvalidStateError("Only alumni accounts can be approved")
	}

	if !user.IsApproved {
		if err := s.userRepo.SetApproved(ctx, userID, true); err != nil {
			return nil, err
		}
		user.IsApproved = true
		logger.Info().Int64("userID", userID).Msg("Alumni account approved")
	}

	return user, nil
}

// RejectAlumni permanently deletes an alumni account. The account's profile,
// jobs, events and mentorship requests are left behind and filtered out at
// read time.
func (s *AdminService) RejectAlumni(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Role != models.RoleAlumni {
		return apperrors.NewInvalidStateError("Only alumni accounts can be rejected")
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	logger.Info().Int64("userID", userID).Msg("Alumni account rejected and removed")
	return nil
}

// GetStats computes the admin dashboard counters
func (s *AdminService) GetStats(ctx context.Context) (*repositories.UserStats, error) {
	return s.userRepo.CountStats(ctx)
}
