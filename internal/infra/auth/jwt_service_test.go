package auth

import (
	"testing"
	"time"

	"imprisio/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"printer"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, "access", accessClaims.Type)

	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles) // Refresh tokens don't carry roles
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_RejectsCrossTypeTokens(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	// A refresh token is not an access token and vice versa: different secret
	// and different type claim.
	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = jwtService.ValidateAccessToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  -time.Minute,
		RefreshTokenTTL: time.Hour,
	}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	hash := jwtService.HashToken("some-refresh-token")
	assert.Len(t, hash, 64) // SHA-256 hex digest
	assert.Equal(t, hash, jwtService.HashToken("some-refresh-token"))
	assert.NotEqual(t, hash, jwtService.HashToken("another-token"))
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Auth = &config.AuthConfig{RefreshTokenTTL: 48 * time.Hour}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, jwtService.GetRefreshTokenDuration())
}
