package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/laundry-service/internal/domain/model"
	"github.com/guttosm/laundry-service/internal/service"
)

// AuditLog persists a notable action: a quote calculation, a catalog update,
// a login. Writes are fire-and-forget so handlers never wait on Mongo.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	writeAuditEntry(loggingService, c, "info", actionType, message, "", fields)
}

// AuditLogError persists a failed action together with its error text.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	errText := ""
	if err != nil {
		errText = err.Error()
	}
	writeAuditEntry(loggingService, c, "error", actionType, message, errText, fields)
}

func writeAuditEntry(loggingService service.LoggingService, c *gin.Context, level, actionType, message, errText string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Error:      errText,
		Fields:     fields,
	}

	if actor, exists := c.Get(string(AuthUserKey)); exists {
		if username, ok := actor.(string); ok {
			entry.Actor = username
		}
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
