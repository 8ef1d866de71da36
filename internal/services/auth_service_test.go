package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArowuTest/bridgetunes-lottery/internal/config"
	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
)

func newAuthConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{
		JWT:   config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
		Admin: config.AdminConfig{Username: "admin", PasswordHash: string(hash)},
	}
}

func TestAuthServiceLogin(t *testing.T) {
	auth := NewAuthService(newAuthConfig(t))

	resp, err := auth.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "letmein"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "admin", claims["sub"])
}

func TestAuthServiceRejectsBadCredentials(t *testing.T) {
	auth := NewAuthService(newAuthConfig(t))

	_, err := auth.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(context.Background(), &models.LoginRequest{Username: "root", Password: "letmein"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestAuthServiceRequiresConfiguration(t *testing.T) {
	auth := NewAuthService(&config.Config{})
	_, err := auth.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "x"})
	assert.ErrorIs(t, err, ErrAuthNotConfigured)
}
