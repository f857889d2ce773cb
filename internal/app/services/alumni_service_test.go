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

func TestAlumniUpsertOverwritesInPlace(t *testing.T) {
	users := newFakeUserRepo()
	owner := users.addUser("Ravi", "ravi@example.com", models.RoleAlumni, true)
	repo := newFakeAlumniProfileRepo(users)
	svc := NewAlumniService(repo)
	ctx := context.Background()

	first, err := svc.UpsertProfile(ctx, owner.ID, &dto.UpsertAlumniProfileRequest{
		GraduationYear: 2015,
		Degree:         "BTech",
		CurrentCompany: "Initech",
	})
	require.NoError(t, err)

	second, err := svc.UpsertProfile(ctx, owner.ID, &dto.UpsertAlumniProfileRequest{
		GraduationYear: 2015,
		Degree:         "BTech",
		CurrentCompany: "Globex",
		Skills:         dto.StringList{"Go", "SQL"},
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "resubmission must update the same record")
	assert.Equal(t, "Globex", second.CurrentCompany)

	// The upsert response comes back joined with the owner
	require.NotNil(t, second.User)
	assert.Equal(t, "ravi@example.com", second.User.Email)

	all, err := repo.GetAllWithOwner(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListApprovedFiltersOwners(t *testing.T) {
	users := newFakeUserRepo()
	approved := users.addUser("Ravi", "ravi@example.com", models.RoleAlumni, true)
	pending := users.addUser("Meera", "meera@example.com", models.RoleAlumni, false)
	deleted := users.addUser("Karan", "karan@example.com", models.RoleAlumni, true)

	repo := newFakeAlumniProfileRepo(users)
	svc := NewAlumniService(repo)
	ctx := context.Background()

	for _, owner := range []int64{approved.ID, pending.ID, deleted.ID} {
		_, err := svc.UpsertProfile(ctx, owner, &dto.UpsertAlumniProfileRequest{
			GraduationYear: 2015,
			Degree:         "BTech",
		})
		require.NoError(t, err)
	}

	// Deleting the account leaves the profile behind as an orphan
	require.NoError(t, users.Delete(ctx, deleted.ID))

	visible, err := svc.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, approved.ID, visible[0].UserID)
	for _, p := range visible {
		require.NotNil(t, p.User)
		require.NotNil(t, p.User.IsApproved)
		assert.True(t, *p.User.IsApproved)
	}
}

func TestGetByIDIgnoresApproval(t *testing.T) {
	users := newFakeUserRepo()
	pending := users.addUser("Meera", "meera@example.com", models.RoleAlumni, false)
	repo := newFakeAlumniProfileRepo(users)
	svc := NewAlumniService(repo)
	ctx := context.Background()

	created, err := svc.UpsertProfile(ctx, pending.ID, &dto.UpsertAlumniProfileRequest{
		GraduationYear: 2020,
		Degree:         "MTech",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, pending.ID, got.UserID)

	_, err = svc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestGetMyProfileMissing(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAlumniService(newFakeAlumniProfileRepo(users))

	_, err := svc.GetMyProfile(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}
