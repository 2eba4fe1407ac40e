package repositories

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrJobNotFound          = errors.New("job listing not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and user")
	ErrVerificationNotFound = errors.New("verification request not found")
	ErrVerificationDecided  = errors.New("verification request already decided")
	ErrDuplicatePending     = errors.New("pending verification request already exists")
	ErrTokenNotFound        = errors.New("refresh token not found")
)

// isUniqueViolation reports whether err is a unique-constraint failure.
// Postgres reports 23505 through lib/pq; the sqlite driver used in tests
// only exposes the message text.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
