package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/laundry-service/internal/domain/dto"
	"github.com/guttosm/laundry-service/internal/i18n"
)

// TimeoutConfig configures the per-request deadline middleware.
type TimeoutConfig struct {
	// Timeout is the deadline applied to the request context.
	Timeout time.Duration
	// ErrorMessage is returned when no translator is available.
	ErrorMessage string
}

// DefaultTimeoutConfig returns the production default deadline.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout attaches a deadline to the request context and answers 504 when
// the handler outlives it. The handler runs in its own goroutine; the
// mutex keeps the timed-out path from racing a handler that finishes just
// as the deadline fires.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		var mu sync.Mutex
		var finished bool

		done := make(chan struct{})

		go func() {
			defer func() {
				recover() //nolint:errcheck
				close(done)
			}()
			c.Next()
			mu.Lock()
			finished = true
			mu.Unlock()
		}()

		select {
		case <-done:
			return
		case <-ctx.Done():
			mu.Lock()
			defer mu.Unlock()
			if finished {
				return
			}
			if !c.Writer.Written() {
				message := cfg.ErrorMessage
				if translator := i18n.GetTranslator(); translator != nil {
					message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
				}

				errorResp := dto.NewError(dto.ErrCodeTimeout, message).
					WithRequestID(GetRequestID(c))
				c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
			}
		}
	}
}

// TimeoutWithDuration builds the middleware with the default config and a
// custom deadline.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
