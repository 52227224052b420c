package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("sup3rsecret")
	require.NoError(t, err)
	require.NotEqual(t, "sup3rsecret", hash)

	assert.True(t, CheckPasswordHash("sup3rsecret", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("olga", "test-secret", 30)
	require.NoError(t, err)

	username, err := ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "olga", username)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("olga", "test-secret", 30)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("olga", "test-secret", -1)
	require.NoError(t, err)

	_, err = ParseToken(token, "test-secret")
	assert.Error(t, err)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	_, err := GenerateToken("olga", "", 30)
	assert.Error(t, err)
}
