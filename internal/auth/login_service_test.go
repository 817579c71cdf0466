package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptopackage "github.com/basingerf-felix/spilna-peremoga-website/utils/crypto"
)

func newTestLoginService(t *testing.T) *LoginService {
	t.Helper()
	hash, err := cryptopackage.GenerateFromPassword("admin-password")
	require.NoError(t, err)

	jwtService, err := NewJWTService(strings.Repeat("s", 32), time.Hour)
	require.NoError(t, err)

	svc, err := NewLoginService("admin", hash, jwtService)
	require.NoError(t, err)
	return svc
}

func TestNewLoginServiceRejectsBadHashConfig(t *testing.T) {
	jwtService, err := NewJWTService(strings.Repeat("s", 32), time.Hour)
	require.NoError(t, err)

	_, err = NewLoginService("admin", "", jwtService)
	assert.Error(t, err)

	_, err = NewLoginService("admin", "plaintext-password", jwtService)
	assert.Error(t, err)

	_, err = NewLoginService("", "x", jwtService)
	assert.Error(t, err)
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestLoginService(t)

	result, err := svc.Login("admin", "admin-password")
	require.NoError(t, err)
	assert.Equal(t, "admin", result.Username)
	assert.NotEmpty(t, result.AccessToken)
	assert.True(t, result.AccessTokenExpiry.After(time.Now()))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestLoginService(t)

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody", "admin-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestJWTServiceRoundTrip(t *testing.T) {
	jwtService, err := NewJWTService(strings.Repeat("s", 32), time.Hour)
	require.NoError(t, err)

	token, _, err := jwtService.GenerateAccessToken("admin")
	require.NoError(t, err)

	claims, err := jwtService.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	_, err = jwtService.ParseToken(token + "tampered")
	assert.Error(t, err)
}

func TestNewJWTServiceRejectsWeakSecret(t *testing.T) {
	_, err := NewJWTService("short", time.Hour)
	assert.Error(t, err)

	_, err = NewJWTService(strings.Repeat("s", 32), 0)
	assert.Error(t, err)
}
