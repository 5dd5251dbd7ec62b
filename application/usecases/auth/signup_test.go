package auth_usecases

import (
	"testing"
	"time"

	"certverify.io/infrastructure/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminKeyValid(t *testing.T) {
	key := "let-me-in"
	wrong := "nope"

	t.Setenv("ADMIN_SIGNUP_KEY", "")
	assert.False(t, AdminKeyValid(&key), "admin signup is closed without a configured key")

	t.Setenv("ADMIN_SIGNUP_KEY", key)
	assert.True(t, AdminKeyValid(&key))
	assert.False(t, AdminKeyValid(&wrong))
	assert.False(t, AdminKeyValid(nil))
}

func TestLoginDeviceFromUserAgent(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	device := LoginDeviceFromUserAgent("Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1", at)
	assert.Equal(t, "Safari", device.Browser)
	assert.True(t, device.Mobile)
	assert.Contains(t, device.OS, "iOS")
	assert.Equal(t, at, device.LastLogin)
}

func TestIsUserSignedInRejectsMissingAndBadTokens(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "k")
	assert.Equal(t, "missing auth token", IsUserSignedIn("", nil).ErrorMessage)

	result := IsUserSignedIn("not.a.jwt", nil)
	assert.False(t, result.IsAuthenticated)
	assert.Equal(t, "this session has expired", result.ErrorMessage)
}

func TestIsUserSignedInChecksIssuerAndRoleBeforeSession(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "k")
	t.Setenv("JWT_ISSUER", "certverify")
	now := time.Now()
	token, err := auth.GenerateAuthToken(auth.ClaimsData{
		UserID:    "u1",
		Role:      "student",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	result := IsUserSignedIn(*token, []string{"admin"})
	assert.Equal(t, "you do not have access to this resource", result.ErrorMessage)

	t.Setenv("JWT_ISSUER", "someone-else")
	result = IsUserSignedIn(*token, nil)
	assert.Equal(t, "unauthorised access", result.ErrorMessage)
}
