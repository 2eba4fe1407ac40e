package services

import (
	"context"
	"testing"

	"yaadjobs_backend/internal/models"
	"yaadjobs_backend/internal/repositories"
	"yaadjobs_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSavedJobFixture(t *testing.T) (*gorm.DB, SavedJobService, JobService) {
	t.Helper()

	db := newTestDB(t)
	jobRepo := repositories.NewJobRepository(db)
	svc := NewSavedJobService(repositories.NewSavedJobRepository(db), jobRepo)
	jobSvc := NewJobService(jobRepo, repositories.NewUserRepository(db), repositories.NewApplicationRepository(db))
	return db, svc, jobSvc
}

func TestSavedJobService_SaveUnsave(t *testing.T) {
	db, svc, jobSvc := newSavedJobFixture(t)
	ctx := context.Background()

	business := createUser(t, db, "biz@test.jm", models.UserRoleBusiness)
	seeker := createUser(t, db, "seeker@test.jm", models.UserRoleJobSeeker)
	job := postJob(t, jobSvc, business.ID)

	require.NoError(t, svc.Save(ctx, seeker.ID, job.ID))
	// Saving twice stays a single bookmark.
	require.NoError(t, svc.Save(ctx, seeker.ID, job.ID))

	saved, err := svc.List(ctx, seeker.ID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	require.NotNil(t, saved[0].Job)
	assert.Equal(t, job.ID, saved[0].Job.ID)

	ok, err := svc.IsSaved(ctx, seeker.ID, job.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, svc.Unsave(ctx, seeker.ID, job.ID))
	ok, err = svc.IsSaved(ctx, seeker.ID, job.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSavedJobService_Save_UnknownJob(t *testing.T) {
	db, svc, _ := newSavedJobFixture(t)
	seeker := createUser(t, db, "seeker@test.jm", models.UserRoleJobSeeker)

	err := svc.Save(context.Background(), seeker.ID, "00000000-0000-0000-0000-000000000000")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
