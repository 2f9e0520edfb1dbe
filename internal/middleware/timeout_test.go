package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/laundry-service/internal/domain/dto"
)

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("fast handler completes", func(t *testing.T) {
		router := gin.New()
		router.Use(TimeoutWithDuration(time.Second))
		router.GET("/quote", func(c *gin.Context) {
			c.String(http.StatusOK, "done")
		})

		req := httptest.NewRequest(http.MethodGet, "/quote", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "done", w.Body.String())
	})

	t.Run("slow handler times out with 504", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID(), TimeoutWithDuration(20*time.Millisecond))
		done := make(chan struct{})
		router.GET("/quote", func(c *gin.Context) {
			select {
			case <-c.Request.Context().Done():
			case <-time.After(time.Second):
			}
			close(done)
		})

		req := httptest.NewRequest(http.MethodGet, "/quote", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusGatewayTimeout, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeTimeout, resp.Error)
		assert.Equal(t, "Request timeout", resp.Message)

		<-done
	})

	t.Run("handler sees the deadline on the request context", func(t *testing.T) {
		router := gin.New()
		router.Use(TimeoutWithDuration(time.Second))
		var hasDeadline bool
		router.GET("/quote", func(c *gin.Context) {
			_, hasDeadline = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/quote", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.True(t, hasDeadline)
	})
}

func TestDefaultTimeoutConfig(t *testing.T) {
	cfg := DefaultTimeoutConfig()
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.NotEmpty(t, cfg.ErrorMessage)
}
