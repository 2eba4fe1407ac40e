package services

import (
	"context"
	"testing"
	"time"

	"yaadjobs_backend/internal/models"
	"yaadjobs_backend/internal/services/dto"
	"yaadjobs_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitFor(t *testing.T, svc VerificationService, userID string) *dto.VerificationResponse {
	t.Helper()

	resp, err := svc.Submit(context.Background(), userID, &dto.SubmitVerificationRequest{
		BusinessName:       "Island Tech Ltd",
		RegistrationNumber: "REG-2024-001",
		TRN:                "123-456-789",
	})
	require.NoError(t, err)
	return resp
}

func TestVerificationService_Submit(t *testing.T) {
	db, svc, events := newVerificationFixture(t)
	business := createUser(t, db, "biz@test.jm", models.UserRoleBusiness)

	resp := submitFor(t, svc, business.ID)

	assert.Equal(t, models.VerificationStatusPending, resp.Status)
	assert.Equal(t, business.ID, resp.UserID)
	assert.Nil(t, resp.ReviewedBy)
	assert.Equal(t, "biz@test.jm", resp.SubmitterEmail)

	// Submission keeps the masked TRN current on the profile.
	var owner models.User
	require.NoError(t, db.First(&owner, "id = ?", business.ID).Error)
	assert.Equal(t, "***-***-789", owner.TRNMasked)
	assert.False(t, owner.Verified)

	// Staff are notified of the new request.
	staffEvents := events.roleEvents()
	require.Len(t, staffEvents, 1)
	assert.Equal(t, "verification.submitted", staffEvents[0].Type)
}

func TestVerificationService_Submit_SecondPendingRejected(t *testing.T) {
	db, svc, _ := newVerificationFixture(t)
	business := createUser(t, db, "biz@test.jm", models.UserRoleBusiness)

	submitFor(t, svc, business.ID)

	_, err := svc.Submit(context.Background(), business.ID, &dto.SubmitVerificationRequest{
		BusinessName:       "Island Tech Ltd",
		RegistrationNumber: "REG-2024-001",
		TRN:                "123-456-789",
	})
	assert.ErrorIs(t, err, apperrors.ErrVerificationPendingExists)
}

func TestVerificationService_Submit_RoleGate(t *testing.T) {
	db, svc, _ := newVerificationFixture(t)
	seeker := createUser(t, db, "seeker@test.jm", models.UserRoleJobSeeker)

	_, err := svc.Submit(context.Background(), seeker.ID, &dto.SubmitVerificationRequest{
		BusinessName:       "Not A Business",
		RegistrationNumber: "REG-2024-002",
		TRN:                "987-654-321",
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestVerificationService_ListPending_QueueSemantics(t *testing.T) {
	db, svc, _ := newVerificationFixture(t)
	ctx := context.Background()

	first := createUser(t, db, "first@biz.jm", models.UserRoleBusiness)
	second := createUser(t, db, "second@biz.jm", models.UserRoleBusiness)
	reviewer := createUser(t, db, "staff@yaadjobs.jm", models.UserRoleStaffVerification)

	older := submitFor(t, svc, first.ID)
	require.NoError(t, db.Model(&models.VerificationRequest{}).
		Where("id = ?", older.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)
	newer := submitFor(t, svc, second.ID)

	queue, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Equal(t, older.ID, queue[0].ID)
	assert.Equal(t, newer.ID, queue[1].ID)

	// Deciding a request drops it from the queue.
	_, err = svc.Approve(ctx, older.ID, reviewer.ID)
	require.NoError(t, err)

	queue, err = svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, newer.ID, queue[0].ID)
}

func TestVerificationService_Approve(t *testing.T) {
	db, svc, events := newVerificationFixture(t)
	ctx := context.Background()

	business := createUser(t, db, "biz@test.jm", models.UserRoleBusiness)
	reviewer := createUser(t, db, "staff@yaadjobs.jm", models.UserRoleStaffVerification)
	req := submitFor(t, svc, business.ID)

	resp, err := svc.Approve(ctx, req.ID, reviewer.ID)
	require.NoError(t, err)

	assert.Equal(t, models.VerificationStatusApproved, resp.Status)
	require.NotNil(t, resp.ReviewedBy)
	assert.Equal(t, reviewer.ID, *resp.ReviewedBy)
	assert.NotNil(t, resp.ReviewedAt)

	var owner models.User
	require.NoError(t, db.First(&owner, "id = ?", business.ID).Error)
	assert.True(t, owner.Verified)

	// The owner hears about the decision.
	userEvents := events.userEvents(business.ID)
	require.Len(t, userEvents, 1)
	assert.Equal(t, "verification.decided", userEvents[0].Type)
}

func TestVerificationService_Approve_Twice(t *testing.T) {
	db, svc, _ := newVerificationFixture(t)
	ctx := context.Background()

	business := createUser(t, db, "biz@test.jm", models.UserRoleBusiness)
	reviewer := createUser(t, db, "staff@yaadjobs.jm", models.UserRoleStaffVerification)
	latecomer := createUser(t, db, "staff2@yaadjobs.jm", models.UserRoleStaffVerification)
	req := submitFor(t, svc, business.ID)

	first, err := svc.Approve(ctx, req.ID, reviewer.ID)
	require.NoError(t, err)

	_, err = svc.Approve(ctx, req.ID, latecomer.ID)
	assert.ErrorIs(t, err, apperrors.ErrVerificationDecided)

	_, err = svc.Reject(ctx, req.ID, latecomer.ID)
	assert.ErrorIs(t, err, apperrors.ErrVerificationDecided)

	// The first decision stamp survives intact.
	status, err := svc.StatusForUser(ctx, business.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStatusApproved, status.Status)
	assert.Equal(t, *first.ReviewedBy, *status.ReviewedBy)
}

func TestVerificationService_Reject_DoesNotVerify(t *testing.T) {
	db, svc, _ := newVerificationFixture(t)
	ctx := context.Background()

	business := createUser(t, db, "biz@test.jm", models.UserRoleBusiness)
	reviewer := createUser(t, db, "staff@yaadjobs.jm", models.UserRoleStaffVerification)
	req := submitFor(t, svc, business.ID)

	resp, err := svc.Reject(ctx, req.ID, reviewer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStatusRejected, resp.Status)

	var owner models.User
	require.NoError(t, db.First(&owner, "id = ?", business.ID).Error)
	assert.False(t, owner.Verified)
}

func TestVerificationService_Decide_UnknownRequest(t *testing.T) {
	db, svc, _ := newVerificationFixture(t)
	ctx := context.Background()

	reviewer := createUser(t, db, "staff@yaadjobs.jm", models.UserRoleStaffVerification)

	_, err := svc.Approve(ctx, "00000000-0000-0000-0000-000000000000", reviewer.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	// No user was touched by the failed decision.
	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("verified = ?", true).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestVerificationService_ResubmitAfterRejection(t *testing.T) {
	db, svc, _ := newVerificationFixture(t)
	ctx := context.Background()

	business := createUser(t, db, "biz@test.jm", models.UserRoleBusiness)
	reviewer := createUser(t, db, "staff@yaadjobs.jm", models.UserRoleStaffVerification)

	first := submitFor(t, svc, business.ID)
	_, err := svc.Reject(ctx, first.ID, reviewer.ID)
	require.NoError(t, err)

	// A rejected user may try again, and the retry can succeed.
	second := submitFor(t, svc, business.ID)
	_, err = svc.Approve(ctx, second.ID, reviewer.ID)
	require.NoError(t, err)

	var owner models.User
	require.NoError(t, db.First(&owner, "id = ?", business.ID).Error)
	assert.True(t, owner.Verified)

	status, err := svc.StatusForUser(ctx, business.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStatusApproved, status.Status)
}

func TestVerificationService_StatusForUser_NoRequests(t *testing.T) {
	db, svc, _ := newVerificationFixture(t)
	business := createUser(t, db, "biz@test.jm", models.UserRoleBusiness)

	_, err := svc.StatusForUser(context.Background(), business.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
