package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	"github.com/ArowuTest/bridgetunes-lottery/internal/config"
)

// GenerateJWT generates a signed token for subject and returns it with its expiry
func GenerateJWT(subject string, role string, cfg *config.Config) (string, time.Time, error) {
	if cfg.JWT.Secret == "" {
		return "", time.Time{}, errors.New("jwt secret is not configured")
	}
	now := time.Now()
	expiresAt := now.Add(time.Second * time.Duration(cfg.JWT.ExpiresIn))
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ValidateJWT validates a token and returns its claims
func ValidateJWT(tokenString string, cfg *config.Config) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// ExtractPlayerNumber returns N for names of the form PlayerN, otherwise 0
func ExtractPlayerNumber(name string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(name, "Player"))
	if err != nil {
		return 0
	}
	return n
}

// FormatCurrency renders an amount as dollars with two decimals
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// MaskName masks a player name for logging (e.g., show first 2 and last 2 characters)
func MaskName(name string) string {
	if len(name) > 6 {
		return name[:2] + "****" + name[len(name)-2:]
	}
	return "****"
}
