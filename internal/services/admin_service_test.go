package services

import (
	"context"
	"testing"

	"yaadjobs_backend/internal/models"
	"yaadjobs_backend/internal/repositories"
	"yaadjobs_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_PlatformStats(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	svc := NewAdminService(repositories.NewUserRepository(db), jobRepo, appRepo)
	jobSvc := NewJobService(jobRepo, repositories.NewUserRepository(db), appRepo)
	appSvc := NewApplicationService(appRepo, jobRepo, nil)

	business := createUser(t, db, "biz@test.jm", models.UserRoleBusiness)
	seeker := createUser(t, db, "seeker@test.jm", models.UserRoleJobSeeker)
	job := postJob(t, jobSvc, business.ID)
	_, err := appSvc.Submit(ctx, job.ID, seeker.ID, &dto.SubmitApplicationRequest{})
	require.NoError(t, err)

	stats, err := svc.PlatformStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Users)
	assert.EqualValues(t, 1, stats.Businesses)
	assert.EqualValues(t, 1, stats.JobSeekers)
	assert.EqualValues(t, 0, stats.Freelancers)
	assert.EqualValues(t, 1, stats.Jobs)
	assert.EqualValues(t, 1, stats.Applications)
}

func TestAdminService_ListUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(
		repositories.NewUserRepository(db),
		repositories.NewJobRepository(db),
		repositories.NewApplicationRepository(db),
	)

	for _, email := range []string{"a@test.jm", "b@test.jm", "c@test.jm"} {
		createUser(t, db, email, models.UserRoleJobSeeker)
	}

	users, total, err := svc.ListUsers(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, users, 2)
}
