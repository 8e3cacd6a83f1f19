package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestTokenRoundTrip(t *testing.T) {
	accountID := uuid.New()

	token, err := GenerateToken(testSecret, accountID, 24*time.Hour)
	require.NoError(t, err)

	parsed, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, accountID, parsed)
}

func TestTokenExpiry(t *testing.T) {
	accountID := uuid.New()

	// Already expired.
	expired, err := GenerateToken(testSecret, accountID, -time.Second)
	require.NoError(t, err)
	_, err = ParseToken(testSecret, expired)
	assert.Error(t, err)

	// Still inside the window.
	fresh, err := GenerateToken(testSecret, accountID, time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(testSecret, fresh)
	assert.NoError(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, uuid.New(), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("a-different-secret", token)
	assert.Error(t, err)
}

func TestTokenMalformed(t *testing.T) {
	for _, raw := range []string{"", "garbage", "a.b.c", "Bearer"} {
		_, err := ParseToken(testSecret, raw)
		assert.Error(t, err, "token %q", raw)
	}
}
