package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/laundry-service/internal/domain/dto"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unwritten error becomes a 500", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID(), ErrorHandler())
		router.GET("/quote", func(c *gin.Context) {
			_ = c.Error(errors.New("catalog lookup failed"))
		})

		req := httptest.NewRequest(http.MethodGet, "/quote", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeInternal, resp.Error)
		assert.Equal(t, "An unexpected error occurred", resp.Message)
		assert.NotEmpty(t, resp.RequestID)
	})

	t.Run("portuguese message when requested", func(t *testing.T) {
		router := gin.New()
		router.Use(ErrorHandler())
		router.GET("/quote", func(c *gin.Context) {
			_ = c.Error(errors.New("boom"))
		})

		req := httptest.NewRequest(http.MethodGet, "/quote", nil)
		req.Header.Set("Accept-Language", "pt-PT")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Ocorreu um erro inesperado", resp.Message)
	})

	t.Run("written response is left alone", func(t *testing.T) {
		router := gin.New()
		router.Use(ErrorHandler())
		router.GET("/quote", func(c *gin.Context) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad input"})
			_ = c.Error(errors.New("already handled"))
		})

		req := httptest.NewRequest(http.MethodGet, "/quote", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "bad input"}`, w.Body.String())
	})

	t.Run("no errors, no interference", func(t *testing.T) {
		router := gin.New()
		router.Use(ErrorHandler())
		router.GET("/quote", func(c *gin.Context) {
			c.String(http.StatusOK, "fine")
		})

		req := httptest.NewRequest(http.MethodGet, "/quote", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "fine", w.Body.String())
	})
}
