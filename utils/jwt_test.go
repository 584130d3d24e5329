package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(testSecret, 42, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseJWT(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestJWTNoExpiry(t *testing.T) {
	// ttl of zero issues a token without an exp claim
	token, err := GenerateJWT(testSecret, 7, 0)
	require.NoError(t, err)

	userID, err := ParseJWT(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT(testSecret, 42, -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testSecret, 42, time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT([]byte("another-secret"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTMalformed(t *testing.T) {
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := ParseJWT(testSecret, tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}
