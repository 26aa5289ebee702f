package credentials

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return tok
}

func TestAccessTokenExpiry(t *testing.T) {
	exp := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	tok := signed(t, jwt.RegisteredClaims{Subject: "u1", ExpiresAt: jwt.NewNumericDate(exp)})

	got, err := AccessTokenExpiry(tok)
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))
}

func TestAccessTokenExpiry_NoExp(t *testing.T) {
	_, err := AccessTokenExpiry(signed(t, jwt.RegisteredClaims{Subject: "u1"}))
	require.ErrorIs(t, err, ErrNoExpiry)
}

func TestAccessTokenExpiry_NotAJWT(t *testing.T) {
	_, err := AccessTokenExpiry("opaque-token")
	require.Error(t, err)
}
