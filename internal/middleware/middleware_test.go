package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/bridgetunes-lottery/internal/config"
	"github.com/ArowuTest/bridgetunes-lottery/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(CORSMiddleware(cfg), RequestIDMiddleware(), LoggerMiddleware())
	r.GET("/open", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"requestId": c.GetString(RequestIDKey)})
	})
	r.GET("/admin", JWTAuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString("userID")})
	})
	return r
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{AllowedHosts: []string{"localhost:3000"}},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpiresIn: 60},
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	r := newRouter(testConfig())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/open", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Header().Get("X-Request-ID"), 36)
	assert.Equal(t, "localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	assert.Contains(t, rec.Body.String(), "abc-123")
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(testConfig())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/open", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	r := newRouter(cfg)

	adminToken, _, err := utils.GenerateJWT("admin", "admin", cfg)
	require.NoError(t, err)
	userToken, _, err := utils.GenerateJWT("bob", "player", cfg)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
		{"non-admin role", "Bearer " + userToken, http.StatusForbidden},
		{"admin", "Bearer " + adminToken, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestJWTAuthMiddlewareWithoutSecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Secret = ""
	r := newRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer x")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
