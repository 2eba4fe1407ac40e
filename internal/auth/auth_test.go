package auth

import (
	"testing"
	"time"

	"yaadjobs_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough"))
	assert.ErrorIs(t, ValidatePassword("short"), apperrors.ErrWeakPassword)
	assert.ErrorIs(t, ValidatePassword(""), apperrors.ErrWeakPassword)
}

func TestTokenRoundTrip(t *testing.T) {
	Configure("test-secret", 60)

	tokenStr, err := GenerateToken("user-123", "business")
	require.NoError(t, err)

	claims, err := ParseToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "business", claims.Role)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestParseToken_WrongSecret(t *testing.T) {
	Configure("secret-one", 60)
	tokenStr, err := GenerateToken("user-123", "business")
	require.NoError(t, err)

	Configure("secret-two", 60)
	_, err = ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	Configure("test-secret", 60)
	jwtTTL = -time.Minute
	defer Configure("test-secret", 60)

	tokenStr, err := GenerateToken("user-123", "business")
	require.NoError(t, err)

	_, err = ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	Configure("test-secret", 60)
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}
