package repositories

import (
	"context"
	"testing"

	"yaadjobs_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationRepository_Create_Duplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	business := createTestUser(t, db, "biz@test.jm", models.UserRoleBusiness)
	seeker := createTestUser(t, db, "seeker@test.jm", models.UserRoleJobSeeker)
	job := createTestJob(t, db, business.ID)

	first := &models.Application{JobID: job.ID, UserID: seeker.ID, Status: models.ApplicationStatusSubmitted}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.Application{JobID: job.ID, UserID: seeker.ID, Status: models.ApplicationStatusSubmitted}
	assert.ErrorIs(t, repo.Create(ctx, second), ErrDuplicateApplication)

	// Same user, different job is fine.
	other := createTestJob(t, db, business.ID)
	third := &models.Application{JobID: other.ID, UserID: seeker.ID, Status: models.ApplicationStatusSubmitted}
	assert.NoError(t, repo.Create(ctx, third))
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	business := createTestUser(t, db, "biz@test.jm", models.UserRoleBusiness)
	seeker := createTestUser(t, db, "seeker@test.jm", models.UserRoleJobSeeker)
	job := createTestJob(t, db, business.ID)

	app := &models.Application{JobID: job.ID, UserID: seeker.ID, Status: models.ApplicationStatusSubmitted}
	require.NoError(t, repo.Create(ctx, app))

	updated, err := repo.UpdateStatus(ctx, app.ID, models.ApplicationStatusInterview)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusInterview, updated.Status)

	_, err = repo.UpdateStatus(ctx, "no-such-id", models.ApplicationStatusOffer)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestApplicationRepository_Listings(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	business := createTestUser(t, db, "biz@test.jm", models.UserRoleBusiness)
	seeker := createTestUser(t, db, "seeker@test.jm", models.UserRoleJobSeeker)
	other := createTestUser(t, db, "other@test.jm", models.UserRoleJobSeeker)
	job := createTestJob(t, db, business.ID)

	require.NoError(t, repo.Create(ctx, &models.Application{JobID: job.ID, UserID: seeker.ID, Status: models.ApplicationStatusSubmitted}))
	require.NoError(t, repo.Create(ctx, &models.Application{JobID: job.ID, UserID: other.ID, Status: models.ApplicationStatusSubmitted}))

	mine, err := repo.ListByUser(ctx, seeker.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Job)
	assert.Equal(t, job.ID, mine[0].Job.ID)

	all, err := repo.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	require.NotNil(t, all[0].Applicant)

	count, err := repo.CountByJob(ctx, job.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
