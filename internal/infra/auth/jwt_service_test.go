package auth

import (
	"testing"

	"warden/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()
	roles := []string{"user", "admin"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, "joe", roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	require.NotNil(t, accessClaims)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "joe", accessClaims.Username)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, "access", accessClaims.Type)

	// A refresh token is signed with a different secret and type; it must not
	// pass access validation.
	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken("not.a.token")
	assert.Error(t, err)

	_, err = jwtService.ValidateAccessToken("")
	assert.Error(t, err)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
