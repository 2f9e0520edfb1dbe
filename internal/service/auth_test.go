package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/laundry-service/config"
)

func testAuthConfig(t *testing.T, password string) config.AuthConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return config.AuthConfig{
		Enabled:           true,
		JWTSecretKey:      "test-secret-key",
		AccessTokenTTL:    15 * time.Minute,
		AdminUser:         "admin",
		AdminPasswordHash: string(hash),
	}
}

func TestAdminAuthService_Login(t *testing.T) {
	svc := NewAdminAuthService(testAuthConfig(t, "correct-horse"))

	t.Run("valid credentials issue a token", func(t *testing.T) {
		token, expiresAt, err := svc.Login("admin", "correct-horse")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.True(t, expiresAt.After(time.Now()))
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, _, err := svc.Login("admin", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong username is rejected", func(t *testing.T) {
		_, _, err := svc.Login("root", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing password hash disables login", func(t *testing.T) {
		cfg := testAuthConfig(t, "correct-horse")
		cfg.AdminPasswordHash = ""
		blocked := NewAdminAuthService(cfg)
		_, _, err := blocked.Login("admin", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAdminAuthService_ValidateToken(t *testing.T) {
	svc := NewAdminAuthService(testAuthConfig(t, "correct-horse"))

	t.Run("accepts a token it issued", func(t *testing.T) {
		token, _, err := svc.Login("admin", "correct-horse")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		otherCfg := testAuthConfig(t, "correct-horse")
		otherCfg.JWTSecretKey = "another-secret"
		other := NewAdminAuthService(otherCfg)

		token, _, err := other.Login("admin", "correct-horse")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		cfg := testAuthConfig(t, "correct-horse")
		cfg.AccessTokenTTL = -time.Minute
		expired := NewAdminAuthService(cfg)

		token, _, err := expired.Login("admin", "correct-horse")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
