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

func newAuthFixture(t *testing.T) (*gorm.DB, AuthService) {
	t.Helper()

	db := newTestDB(t)
	svc := NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewRefreshTokenRepository(db),
	)
	return db, svc
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	_, svc := newAuthFixture(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "maria@test.jm",
		Password: "password123",
		Name:     "Maria Brown",
		Role:     models.UserRoleBusiness,
		Location: models.ParishKingston,
		TRN:      "123-456-789",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, models.UserRoleBusiness, resp.User.Role)
	assert.False(t, resp.User.Verified)

	// Only the masked TRN ever reaches the profile.
	assert.Equal(t, "***-***-789", resp.User.TRNMasked)

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "maria@test.jm", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	_, svc := newAuthFixture(t)
	ctx := context.Background()

	req := &dto.RegisterRequest{
		Email:    "maria@test.jm",
		Password: "password123",
		Name:     "Maria Brown",
		Role:     models.UserRoleJobSeeker,
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthService_Register_StaffRoleRefused(t *testing.T) {
	_, svc := newAuthFixture(t)

	for _, role := range []models.UserRole{models.UserRoleAdmin, models.UserRoleStaffVerification, models.UserRoleCEO} {
		_, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Email:    "sneaky@test.jm",
			Password: "password123",
			Name:     "Sneaky",
			Role:     role,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole, "role %s", role)
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "maria@test.jm",
		Password: "short",
		Name:     "Maria Brown",
		Role:     models.UserRoleJobSeeker,
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	db, svc := newAuthFixture(t)
	createUser(t, db, "maria@test.jm", models.UserRoleJobSeeker)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "maria@test.jm", Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@test.jm", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	_, svc := newAuthFixture(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "maria@test.jm",
		Password: "password123",
		Name:     "Maria Brown",
		Role:     models.UserRoleJobSeeker,
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, refreshed.RefreshToken)

	// The old token is burned after rotation.
	_, err = svc.Refresh(ctx, resp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthService_Logout(t *testing.T) {
	_, svc := newAuthFixture(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "maria@test.jm",
		Password: "password123",
		Name:     "Maria Brown",
		Role:     models.UserRoleJobSeeker,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.RefreshToken))

	_, err = svc.Refresh(ctx, resp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthService_UpdateProfile_PartialPatch(t *testing.T) {
	db, svc := newAuthFixture(t)
	ctx := context.Background()
	user := createUser(t, db, "maria@test.jm", models.UserRoleFreelancer)

	bio := "Freelance designer in Kingston."
	parish := models.ParishStAndrew
	updated, err := svc.UpdateProfile(ctx, user.ID, &dto.UpdateProfileRequest{
		Bio:      &bio,
		Location: &parish,
		Skills:   []string{"design", "figma"},
	})
	require.NoError(t, err)

	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, parish, updated.Location)
	assert.Equal(t, []string{"design", "figma"}, updated.Skills)
	// Untouched fields keep their values.
	assert.Equal(t, "Test User", updated.Name)
}
