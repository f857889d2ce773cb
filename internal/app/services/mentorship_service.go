package services

import (
	"context"

	"github.com/alumnisphere/backend/internal/app/models"
	"github.com/alumnisphere/backend/internal/app/models/dto"
	"github.com/alumnisphere/backend/internal/app/repositories"
	"github.com/alumnisphere/backend/internal/pkg/apperrors"
)

// MentorshipService handles mentorship requests between students and alumni
type MentorshipService struct {
	mentorshipRepo repositories.IMentorshipRepository
}

// NewMentorshipService creates a new mentorship service instance
func NewMentorshipService(mentorshipRepo repositories.IMentorshipRepository) *MentorshipService {
	return &MentorshipService{
		mentorshipRepo: mentorshipRepo,
	}
}

// Request sends a new mentorship request from a mentee to a mentor. The pair
// may hold at most one pending or accepted request at a time; the same mentee
// can still ask other mentors in parallel.
func (s *MentorshipService) Request(ctx context.Context, menteeID int64, req *dto.CreateMentorshipRequest) (*models.Mentorship, error) {
	active, err := s.mentorshipRepo.HasActiveBetween(ctx, req.MentorID, menteeID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, apperrors.NewConflictError("An active mentorship request with this mentor already exists")
	}

	m := &models.Mentorship{
		MentorID: req.MentorID,
		MenteeID: menteeID,
		Domain:   req.Domain,
		Message:  req.Message,
		Status:   models.MentorshipPending,
	}

	if err := s.mentorshipRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	// Re-read so the response embeds the mentor and mentee {name, email}
	return s.mentorshipRepo.GetByID(ctx, m.ID)
}

// ListMyRequests returns the requests the mentee has sent, joined with each
// mentor, newest first
func (s *MentorshipService) ListMyRequests(ctx context.Context, menteeID int64) ([]*models.Mentorship, error) {
	return s.mentorshipRepo.GetByMentee(ctx, menteeID)
}

// ListIncoming returns the requests addressed to the mentor, joined with
// each mentee, newest first
func (s *MentorshipService) ListIncoming(ctx context.Context, mentorID int64) ([]*models.Mentorship, error) {
	return s.mentorshipRepo.GetByMentor(ctx, mentorID)
}

// UpdateStatus moves a request to accepted, rejected or completed. Only the
// addressed mentor may do this. Any of the three target statuses is applied
// regardless of the current one.
// TODO: decide with product whether pending should be allowed to jump
// straight to completed; today it is.
func (s *MentorshipService) UpdateStatus(ctx context.Context, requestID, mentorID int64, status models.MentorshipStatus) (*models.Mentorship, error) {
	switch status {
	case models.MentorshipAccepted, models.MentorshipRejected, models.MentorshipCompleted:
	default:
		return nil, apperrors.NewValidationError("Status must be 'accepted', 'rejected' or 'completed'")
	}

	m, err := s.mentorshipRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if m.MentorID != mentorID {
		return nil, apperrors.NewForbiddenError("You can only respond to your own mentorship requests")
	}

	if _, err := s.mentorshipRepo.UpdateStatus(ctx, requestID, status); err != nil {
		return nil, err
	}

	// Re-read so the response embeds the mentor and mentee {name, email}
	return s.mentorshipRepo.GetByID(ctx, requestID)
}
