package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestTokenAlive(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, tokenAlive(signedToken(t, now.Add(time.Hour)), now))
	assert.False(t, tokenAlive(signedToken(t, now.Add(-time.Hour)), now))

	// непарсящийся токен и токен без exp — не повод сбрасывать сессию
	assert.True(t, tokenAlive("opaque-token", now))
}
