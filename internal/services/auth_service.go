package services

import (
	"context"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"github.com/ArowuTest/bridgetunes-lottery/internal/config"
	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
	"github.com/ArowuTest/bridgetunes-lottery/internal/utils"
)

var (
	// ErrInvalidCredentials is returned for an unknown user or wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAuthNotConfigured is returned when no JWT secret or admin password hash is set
	ErrAuthNotConfigured = errors.New("admin authentication is not configured")
)

type authService struct {
	cfg *config.Config
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

// Login checks the admin credentials and issues a token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if s.cfg.JWT.Secret == "" || s.cfg.Admin.PasswordHash == "" {
		return nil, ErrAuthNotConfigured
	}

	userMatches := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.Admin.Username)) == 1
	err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Admin.PasswordHash), []byte(req.Password))
	if !userMatches || err != nil {
		slog.Warn("Admin login failed", "username", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateJWT(req.Username, "admin", s.cfg)
	if err != nil {
		slog.Error("Failed to generate token", "error", err)
		return nil, errors.New("failed to generate token")
	}
	slog.Info("Admin logged in", "username", req.Username)
	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// ValidateToken returns the claims of a valid token
func (s *authService) ValidateToken(tokenString string) (map[string]interface{}, error) {
	claims, err := utils.ValidateJWT(tokenString, s.cfg)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
