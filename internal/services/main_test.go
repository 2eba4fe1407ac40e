package services

import (
	"fmt"
	"sync"
	"testing"

	"yaadjobs_backend/internal/auth"
	"yaadjobs_backend/internal/models"
	"yaadjobs_backend/internal/repositories"
	"yaadjobs_backend/ws"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	auth.Configure("test-secret-not-for-production", 60)
	m.Run()
}

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

func createUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         "Test User",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	toUser map[string][]ws.Event
	toRole []ws.Event
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{toUser: make(map[string][]ws.Event)}
}

func (p *recordingPublisher) PublishToUser(userID string, event ws.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.toUser[userID] = append(p.toUser[userID], event)
}

func (p *recordingPublisher) PublishToRoles(roles map[string]bool, event ws.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.toRole = append(p.toRole, event)
}

func (p *recordingPublisher) userEvents(userID string) []ws.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ws.Event(nil), p.toUser[userID]...)
}

func (p *recordingPublisher) roleEvents() []ws.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ws.Event(nil), p.toRole...)
}

func newVerificationFixture(t *testing.T) (*gorm.DB, VerificationService, *recordingPublisher) {
	t.Helper()

	db := newTestDB(t)
	events := newRecordingPublisher()
	svc := NewVerificationService(
		repositories.NewVerificationRepository(db),
		repositories.NewUserRepository(db),
		events,
	)
	return db, svc, events
}
