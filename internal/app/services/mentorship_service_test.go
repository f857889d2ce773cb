package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnisphere/backend/internal/app/models"
	"github.com/alumnisphere/backend/internal/app/models/dto"
	"github.com/alumnisphere/backend/internal/pkg/apperrors"
)

func newMentorshipService() (*MentorshipService, *fakeUserRepo) {
	users := newFakeUserRepo()
	return NewMentorshipService(newFakeMentorshipRepo(users)), users
}

func TestRequestMentorship(t *testing.T) {
	svc, users := newMentorshipService()
	mentee := users.addUser("Asha", "asha@example.com", models.RoleStudent, true)
	mentor := users.addUser("Ravi", "ravi@example.com", models.RoleAlumni, true)

	m, err := svc.Request(context.Background(), mentee.ID, &dto.CreateMentorshipRequest{
		MentorID: mentor.ID,
		Domain:   "Distributed systems",
		Message:  "Looking for guidance",
	})
	require.NoError(t, err)

	assert.Equal(t, models.MentorshipPending, m.Status)
	assert.Equal(t, mentee.ID, m.MenteeID)
	assert.Equal(t, mentor.ID, m.MentorID)

	// Both parties come back embedded
	require.NotNil(t, m.Mentor)
	assert.Equal(t, "ravi@example.com", m.Mentor.Email)
	require.NotNil(t, m.Mentee)
	assert.Equal(t, "Asha", m.Mentee.Name)
}

func TestRequestDuplicateActiveGuard(t *testing.T) {
	svc, _ := newMentorshipService()
	ctx := context.Background()

	_, err := svc.Request(ctx, 10, &dto.CreateMentorshipRequest{MentorID: 20, Domain: "Go"})
	require.NoError(t, err)

	// A second request to the same mentor conflicts while the first is pending
	_, err = svc.Request(ctx, 10, &dto.CreateMentorshipRequest{MentorID: 20, Domain: "Go"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// A different mentor is fine
	_, err = svc.Request(ctx, 10, &dto.CreateMentorshipRequest{MentorID: 21, Domain: "Go"})
	require.NoError(t, err)
}

func TestRequestAllowedAfterRejection(t *testing.T) {
	svc, _ := newMentorshipService()
	ctx := context.Background()

	first, err := svc.Request(ctx, 10, &dto.CreateMentorshipRequest{MentorID: 20, Domain: "Go"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, first.ID, 20, models.MentorshipRejected)
	require.NoError(t, err)

	// The pair is free again once no request is pending or accepted
	_, err = svc.Request(ctx, 10, &dto.CreateMentorshipRequest{MentorID: 20, Domain: "Go"})
	require.NoError(t, err)
}

func TestUpdateStatusValidation(t *testing.T) {
	svc, _ := newMentorshipService()
	ctx := context.Background()

	m, err := svc.Request(ctx, 10, &dto.CreateMentorshipRequest{MentorID: 20, Domain: "Go"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, m.ID, 20, "pending")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.UpdateStatus(ctx, 999, 20, models.MentorshipAccepted)
	assert.ErrorIs(t, err, apperrors.ErrMentorshipNotFound)

	// Only the addressed mentor may respond
	_, err = svc.UpdateStatus(ctx, m.ID, 21, models.MentorshipAccepted)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateStatusPermitsAnyTargetState(t *testing.T) {
	svc, users := newMentorshipService()
	ctx := context.Background()
	mentee := users.addUser("Asha", "asha@example.com", models.RoleStudent, true)
	mentor := users.addUser("Ravi", "ravi@example.com", models.RoleAlumni, true)

	m, err := svc.Request(ctx, mentee.ID, &dto.CreateMentorshipRequest{MentorID: mentor.ID, Domain: "Go"})
	require.NoError(t, err)

	// Jumping straight from pending to completed is accepted today
	updated, err := svc.UpdateStatus(ctx, m.ID, mentor.ID, models.MentorshipCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.MentorshipCompleted, updated.Status)

	// The status response carries the embedded parties too
	require.NotNil(t, updated.Mentee)
	assert.Equal(t, "asha@example.com", updated.Mentee.Email)
}

func TestListRequestsBySide(t *testing.T) {
	svc, _ := newMentorshipService()
	ctx := context.Background()

	_, err := svc.Request(ctx, 10, &dto.CreateMentorshipRequest{MentorID: 20, Domain: "Go"})
	require.NoError(t, err)
	_, err = svc.Request(ctx, 10, &dto.CreateMentorshipRequest{MentorID: 21, Domain: "SQL"})
	require.NoError(t, err)
	_, err = svc.Request(ctx, 11, &dto.CreateMentorshipRequest{MentorID: 20, Domain: "Cloud"})
	require.NoError(t, err)

	sent, err := svc.ListMyRequests(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, sent, 2)
	// Newest first
	assert.Equal(t, "SQL", sent[0].Domain)

	incoming, err := svc.ListIncoming(ctx, 20)
	require.NoError(t, err)
	assert.Len(t, incoming, 2)
	assert.Equal(t, "Cloud", incoming[0].Domain)
}
