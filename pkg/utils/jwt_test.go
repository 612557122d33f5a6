package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT("c-17", "counselor", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "c-17", claims.UserID)
	assert.Equal(t, "counselor", claims.Role)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, 5*time.Second)
}

func TestParseJWT_Rejects(t *testing.T) {
	SetJWTSecret("test-secret")

	expired, err := GenerateJWT("c-1", "counselor", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired)
	assert.ErrorIs(t, err, ErrTokenExpired)

	_, err = ParseJWT("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	SetJWTSecret("other-secret")
	foreign, err := GenerateJWT("c-1", "admin", time.Hour)
	require.NoError(t, err)
	SetJWTSecret("test-secret")
	_, err = ParseJWT(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "x", Role: "admin"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseJWT(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
