package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/laundry-service/config"
	"github.com/guttosm/laundry-service/internal/domain/dto"
	"github.com/guttosm/laundry-service/internal/service"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	authService := service.NewAdminAuthService(config.AuthConfig{
		Enabled:           true,
		JWTSecretKey:      "handler-test-key",
		AccessTokenTTL:    time.Minute,
		AdminUser:         "admin",
		AdminPasswordHash: string(hash),
	})

	handler := NewAuthHandler(authService)
	router := gin.New()
	router.POST("/api/auth/login", handler.Login)
	return router
}

func postLogin(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	router := newAuthRouter(t)

	w := postLogin(router, `{"username": "admin", "password": "secret"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dto.TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.AccessToken)
	assert.Equal(t, "Bearer", resp.Data.TokenType)
	assert.True(t, resp.Data.ExpiresAt.After(time.Now()))
}

func TestLogin_Failures(t *testing.T) {
	router := newAuthRouter(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"wrong password", `{"username": "admin", "password": "nope"}`, http.StatusUnauthorized},
		{"unknown user", `{"username": "root", "password": "secret"}`, http.StatusUnauthorized},
		{"missing password", `{"username": "admin"}`, http.StatusBadRequest},
		{"malformed body", `{"username": `, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postLogin(router, tt.body)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.NotContains(t, w.Body.String(), "access_token")
		})
	}
}
