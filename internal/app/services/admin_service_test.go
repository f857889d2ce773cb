package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnisphere/backend/internal/app/models"
	"github.com/alumnisphere/backend/internal/pkg/apperrors"
)

func TestApproveAlumni(t *testing.T) {
	users := newFakeUserRepo()
	pending := users.addUser("Ravi", "ravi@example.com", models.RoleAlumni, false)
	svc := NewAdminService(users)

	user, err := svc.ApproveAlumni(context.Background(), pending.ID)
	require.NoError(t, err)
	assert.True(t, user.IsApproved)

	// Approving again succeeds and changes nothing
	user, err = svc.ApproveAlumni(context.Background(), pending.ID)
	require.NoError(t, err)
	assert.True(t, user.IsApproved)
}

func TestApproveRejectsNonAlumni(t *testing.T) {
	users := newFakeUserRepo()
	student := users.addUser("Asha", "asha@example.com", models.RoleStudent, true)
	svc := NewAdminService(users)

	_, err := svc.ApproveAlumni(context.Background(), student.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	_, err = svc.ApproveAlumni(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestRejectAlumniDeletesAccount(t *testing.T) {
	users := newFakeUserRepo()
	pending := users.addUser("Ravi", "ravi@example.com", models.RoleAlumni, false)
	svc := NewAdminService(users)

	require.NoError(t, svc.RejectAlumni(context.Background(), pending.ID))

	_, err := users.GetByID(context.Background(), pending.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	// Rejecting the already-deleted account fails NotFound
	err = svc.RejectAlumni(context.Background(), pending.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestRejectRejectsNonAlumni(t *testing.T) {
	users := newFakeUserRepo()
	student := users.addUser("Asha", "asha@example.com", models.RoleStudent, true)
	svc := NewAdminService(users)

	err := svc.RejectAlumni(context.Background(), student.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestGetStatsAfterApprovals(t *testing.T) {
	users := newFakeUserRepo()
	users.addUser("Admin", "admin@example.com", models.RoleAdmin, true)
	users.addUser("Asha", "asha@example.com", models.RoleStudent, true)
	p1 := users.addUser("Ravi", "ravi@example.com", models.RoleAlumni, false)
	p2 := users.addUser("Meera", "meera@example.com", models.RoleAlumni, false)
	users.addUser("Karan", "karan@example.com", models.RoleAlumni, false)

	svc := NewAdminService(users)
	ctx := context.Background()

	before, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, before.TotalUsers)
	assert.EqualValues(t, 0, before.TotalAlumni)
	assert.EqualValues(t, 1, before.TotalStudents)
	assert.EqualValues(t, 3, before.PendingApprovals)

	_, err = svc.ApproveAlumni(ctx, p1.ID)
	require.NoError(t, err)
	_, err = svc.ApproveAlumni(ctx, p2.ID)
	require.NoError(t, err)

	after, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, after.TotalUsers, "approvals must not change the user count")
	assert.EqualValues(t, 2, after.TotalAlumni)
	assert.EqualValues(t, 1, after.PendingApprovals)
}

func TestListUsersNewestFirst(t *testing.T) {
	users := newFakeUserRepo()
	users.addUser("First", "first@example.com", models.RoleStudent, true)
	users.addUser("Second", "second@example.com", models.RoleStudent, true)
	svc := NewAdminService(users)

	all, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "second@example.com", all[0].Email)
	assert.Equal(t, "first@example.com", all[1].Email)
}
