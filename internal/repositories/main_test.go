package repositories

import (
	"fmt"
	"testing"

	"yaadjobs_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema.
// Each call gets its own named shared-cache database so parallel tests
// never see each other's rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.VerificationRequest{},
		&models.JobListing{},
		&models.Application{},
		&models.SavedJob{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "$2a$10$not.a.real.hash.but.not.checked.here",
		Name:         "Test User",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestJob(t *testing.T, db *gorm.DB, businessID string) *models.JobListing {
	t.Helper()

	job := &models.JobListing{
		BusinessID:  businessID,
		Title:       "Backend Developer",
		CompanyName: "Island Tech Ltd",
		Location:    models.ParishKingston,
		Type:        models.JobTypeFullTime,
		Description: "Build and maintain backend services.",
		Status:      models.JobStatusActive,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
