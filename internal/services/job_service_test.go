package services

import (
	"context"
	"testing"

	"yaadjobs_backend/internal/models"
	"yaadjobs_backend/internal/repositories"
	"yaadjobs_backend/internal/services/dto"
	"yaadjobs_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newJobFixture(t *testing.T) (*gorm.DB, JobService) {
	t.Helper()

	db := newTestDB(t)
	svc := NewJobService(
		repositories.NewJobRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewApplicationRepository(db),
	)
	return db, svc
}

func TestJobService_Create_BusinessOnly(t *testing.T) {
	db, svc := newJobFixture(t)
	ctx := context.Background()

	seeker := createUser(t, db, "seeker@test.jm", models.UserRoleJobSeeker)
	_, err := svc.Create(ctx, seeker.ID, &dto.CreateJobRequest{
		Title:       "Backend Developer",
		CompanyName: "Island Tech Ltd",
		Location:    models.ParishKingston,
		Type:        models.JobTypeFullTime,
		Description: "Build and maintain backend services.",
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	business := createUser(t, db, "biz@test.jm", models.UserRoleBusiness)
	job, err := svc.Create(ctx, business.ID, &dto.CreateJobRequest{
		Title:       "Backend Developer",
		CompanyName: "Island Tech Ltd",
		Location:    models.ParishKingston,
		Type:        models.JobTypeFullTime,
		Description: "Build and maintain backend services.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusActive, job.Status)
}

func TestJobService_Get_ViewCounting(t *testing.T) {
	db, svc := newJobFixture(t)
	ctx := context.Background()

	business := createUser(t, db, "biz@test.jm", models.UserRoleBusiness)
	job := postJob(t, svc, business.ID)

	// The owner's own reads don't count as views.
	_, err := svc.Get(ctx, job.ID, business.ID)
	require.NoError(t, err)

	_, err = svc.Get(ctx, job.ID, "some-visitor")
	require.NoError(t, err)
	_, err = svc.Get(ctx, job.ID, "")
	require.NoError(t, err)

	reloaded, err := svc.Get(ctx, job.ID, business.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Views)
}

func TestJobService_Update_OwnerOnly(t *testing.T) {
	db, svc := newJobFixture(t)
	ctx := context.Background()

	business := createUser(t, db, "biz@test.jm", models.UserRoleBusiness)
	rival := createUser(t, db, "rival@test.jm", models.UserRoleBusiness)
	job := postJob(t, svc, business.ID)

	title := "Senior Backend Developer"
	_, err := svc.Update(ctx, job.ID, rival.ID, &dto.UpdateJobRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	updated, err := svc.Update(ctx, job.ID, business.ID, &dto.UpdateJobRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	// Untouched fields survive the patch.
	assert.Equal(t, job.Description, updated.Description)
}

func TestJobService_Close_OwnerOnly(t *testing.T) {
	db, svc := newJobFixture(t)
	ctx := context.Background()

	business := createUser(t, db, "biz@test.jm", models.UserRoleBusiness)
	rival := createUser(t, db, "rival@test.jm", models.UserRoleBusiness)
	job := postJob(t, svc, business.ID)

	assert.ErrorIs(t, svc.Close(ctx, job.ID, rival.ID), apperrors.ErrInsufficientPermissions)
	require.NoError(t, svc.Close(ctx, job.ID, business.ID))

	closed, err := svc.Get(ctx, job.ID, business.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, closed.Status)
}

func TestJobService_Get_NotFound(t *testing.T) {
	_, svc := newJobFixture(t)

	_, err := svc.Get(context.Background(), "00000000-0000-0000-0000-000000000000", "")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
