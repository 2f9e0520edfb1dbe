// Package middleware provides the HTTP middleware stack for the laundry service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID on both requests and responses.
const RequestIDHeader = "X-Request-ID"

// ContextKey avoids collisions with other packages' gin context keys.
type ContextKey string

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey ContextKey = "request_id"

// RequestID tags every request with an ID, honoring a client-supplied
// X-Request-ID and generating a UUID otherwise. The ID is echoed back in
// the response headers so quotes can be correlated with persisted logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the request ID set by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(string(RequestIDKey)); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}
