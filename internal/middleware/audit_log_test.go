package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/laundry-service/internal/domain/model"
)

func waitForEntries(t *testing.T, recorder *recordingLoggingService, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for recorder.count() < n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d log entries, got %d", n, recorder.count())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func auditTestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/quote", nil)
	c.Request.Header.Set("User-Agent", "test-agent")
	return c
}

func lastEntry(recorder *recordingLoggingService) *model.LogEntry {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return recorder.entries[len(recorder.entries)-1]
}

func TestAuditLog(t *testing.T) {
	recorder := &recordingLoggingService{}
	c := auditTestContext(t)
	c.Set(string(AuthUserKey), "admin")

	AuditLog(recorder, c, "quote", "Quote calculated", map[string]interface{}{"items": 12})
	waitForEntries(t, recorder, 1)

	entry := lastEntry(recorder)
	assert.Equal(t, "info", entry.Level)
	assert.Equal(t, "quote", entry.ActionType)
	assert.Equal(t, "Quote calculated", entry.Message)
	assert.Equal(t, http.MethodPost, entry.Method)
	assert.Equal(t, "/api/quote", entry.Path)
	assert.Equal(t, "test-agent", entry.UserAgent)
	assert.Equal(t, "admin", entry.Actor)
	require.NotNil(t, entry.Fields)
	assert.Equal(t, 12, entry.Fields["items"])
}

func TestAuditLogError(t *testing.T) {
	recorder := &recordingLoggingService{}
	c := auditTestContext(t)

	AuditLogError(recorder, c, "login", "Login failed", errors.New("invalid credentials"), nil)
	waitForEntries(t, recorder, 1)

	entry := lastEntry(recorder)
	assert.Equal(t, "error", entry.Level)
	assert.Equal(t, "login", entry.ActionType)
	assert.Equal(t, "invalid credentials", entry.Error)
	assert.Empty(t, entry.Actor)
}

func TestAuditLog_NilServiceIsNoop(t *testing.T) {
	c := auditTestContext(t)

	// Must not panic.
	AuditLog(nil, c, "quote", "Quote calculated", nil)
	AuditLogError(nil, c, "quote", "Quote failed", errors.New("x"), nil)
}
