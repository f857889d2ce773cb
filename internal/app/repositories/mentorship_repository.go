package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumnisphere/backend/internal/app/models"
	"github.com/alumnisphere/backend/internal/pkg/apperrors"
	"github.com/alumnisphere/backend/internal/pkg/dberrors"
)

// IMentorshipRepository defines the interface for mentorship request database operations
type IMentorshipRepository interface {
	Create(ctx context.Context, m *models.Mentorship) error
	GetByID(ctx context.Context, id int64) (*models.Mentorship, error)
	HasActiveBetween(ctx context.Context, mentorID, menteeID int64) (bool, error)
	GetByMentee(ctx context.Context, menteeID int64) ([]*models.Mentorship, error)
	GetByMentor(ctx context.Context, mentorID int64) ([]*models.Mentorship, error)
	UpdateStatus(ctx context.Context, id int64, status models.MentorshipStatus) (*models.Mentorship, error)
}

// MentorshipRepository handles database operations for mentorship requests
type MentorshipRepository struct {
	db *pgxpool.Pool
}

// NewMentorshipRepository creates a new MentorshipRepository
func NewMentorshipRepository(db *pgxpool.Pool) *MentorshipRepository {
	return &MentorshipRepository{
		db: db,
	}
}

// Create persists a new mentorship request. The partial unique index on
// (mentor_id, mentee_id) over pending and accepted rows backstops the
// service-level duplicate check.
func (r *MentorshipRepository) Create(ctx context.Context, m *models.Mentorship) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO mentorship_requests (mentor_id, mentee_id, domain, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		m.MentorID, m.MenteeID, m.Domain, m.Message, m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "mentorship_requests_active_pair_key") {
			return apperrors.ErrMentorshipActive
		}
		return fmt.Errorf("error creating mentorship request: %w", err)
	}

	return nil
}

// GetByID retrieves a mentorship request by ID, joined with both parties
func (r *MentorshipRepository) GetByID(ctx context.Context, id int64) (*models.Mentorship, error) {
	var m models.Mentorship
	var mentorID, menteeID *int64
	var mentorName, mentorEmail, menteeName, menteeEmail *string

	err := r.db.QueryRow(ctx, `
		SELECT m.id, m.mentor_id, m.mentee_id, m.domain, m.message, m.status,
		       m.created_at, m.updated_at,
		       mentor.id, mentor.name, mentor.email,
		       mentee.id, mentee.name, mentee.email
		FROM mentorship_requests m
		LEFT JOIN users mentor ON mentor.id = m.mentor_id
		LEFT JOIN users mentee ON mentee.id = m.mentee_id
		WHERE m.id = $1`,
		id).Scan(
		&m.ID, &m.MentorID, &m.MenteeID, &m.Domain, &m.Message,
		&m.Status, &m.CreatedAt, &m.UpdatedAt,
		&mentorID, &mentorName, &mentorEmail,
		&menteeID, &menteeName, &menteeEmail)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorshipNotFound
		}
		return nil, fmt.Errorf("error retrieving mentorship request: %w", err)
	}

	if mentorID != nil {
		m.Mentor = &models.UserBrief{ID: *mentorID, Name: *mentorName, Email: *mentorEmail}
	}
	if menteeID != nil {
		m.Mentee = &models.UserBrief{ID: *menteeID, Name: *menteeName, Email: *menteeEmail}
	}

	return &m, nil
}

// HasActiveBetween reports whether a pending or accepted request already
// links the pair
func (r *MentorshipRepository) HasActiveBetween(ctx context.Context, mentorID, menteeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM mentorship_requests
			WHERE mentor_id = $1 AND mentee_id = $2
			  AND status IN ('pending', 'accepted'))`,
		mentorID, menteeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking mentorship requests: %w", err)
	}

	return exists, nil
}

func scanMentorshipWithPeer(row pgx.Row, attach func(m *models.Mentorship, peer *models.UserBrief)) (*models.Mentorship, error) {
	var m models.Mentorship
	var peerID *int64
	var peerName, peerEmail *string

	err := row.Scan(
		&m.ID, &m.MentorID, &m.MenteeID, &m.Domain, &m.Message,
		&m.Status, &m.CreatedAt, &m.UpdatedAt,
		&peerID, &peerName, &peerEmail,
	)
	if err != nil {
		return nil, err
	}

	if peerID != nil {
		attach(&m, &models.UserBrief{
			ID:    *peerID,
			Name:  *peerName,
			Email: *peerEmail,
		})
	}

	return &m, nil
}

// GetByMentee retrieves the requests one mentee has sent, joined with each
// mentor, newest first
func (r *MentorshipRepository) GetByMentee(ctx context.Context, menteeID int64) ([]*models.Mentorship, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.mentor_id, m.mentee_id, m.domain, m.message, m.status,
		       m.created_at, m.updated_at,
		       u.id, u.name, u.email
		FROM mentorship_requests m
		LEFT JOIN users u ON u.id = m.mentor_id
		WHERE m.mentee_id = $1
		ORDER BY m.created_at DESC`, menteeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.Mentorship
	for rows.Next() {
		m, err := scanMentorshipWithPeer(rows, func(m *models.Mentorship, peer *models.UserBrief) {
			m.Mentor = peer
		})
		if err != nil {
			return nil, err
		}
		requests = append(requests, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// GetByMentor retrieves the requests addressed to one mentor, joined with
// each mentee, newest first
func (r *MentorshipRepository) GetByMentor(ctx context.Context, mentorID int64) ([]*models.Mentorship, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.mentor_id, m.mentee_id, m.domain, m.message, m.status,
		       m.created_at, m.updated_at,
		       u.id, u.name, u.email
		FROM mentorship_requests m
		LEFT JOIN users u ON u.id = m.mentee_id
		WHERE m.mentor_id = $1
		ORDER BY m.created_at DESC`, mentorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.Mentorship
	for rows.Next() {
		m, err := scanMentorshipWithPeer(rows, func(m *models.Mentorship, peer *models.UserBrief) {
			m.Mentee = peer
		})
		if err != nil {
			return nil, err
		}
		requests = append(requests, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateStatus moves a request to a new status and returns the updated row
func (r *MentorshipRepository) UpdateStatus(ctx context.Context, id int64, status models.MentorshipStatus) (*models.Mentorship, error) {
	m := &models.Mentorship{}
	err := r.db.QueryRow(ctx, `
		UPDATE mentorship_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, mentor_id, mentee_id, domain, message, status, created_at, updated_at`,
		status, id).Scan(
		&m.ID, &m.MentorID, &m.MenteeID, &m.Domain, &m.Message,
		&m.Status, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorshipNotFound
		}
		return nil, fmt.Errorf("error updating mentorship request: %w", err)
	}

	return m, nil
}
