package model

import "time"

// LogEntry is a structured request or audit log record, persisted to MongoDB
// when the database is enabled.
type LogEntry struct {
	Timestamp  time.Time              `json:"timestamp"`
	Level      string                 `json:"level"`
	Message    string                 `json:"message"`
	RequestID  string                 `json:"request_id,omitempty"`
	Method     string                 `json:"method,omitempty"`
	Path       string                 `json:"path,omitempty"`
	StatusCode int                    `json:"status_code,omitempty"`
	Duration   int64                  `json:"duration_ms,omitempty"`
	IP         string                 `json:"ip,omitempty"`
	UserAgent  string                 `json:"user_agent,omitempty"`
	ActionType string                 `json:"action_type,omitempty"`
	Actor      string                 `json:"actor,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
}

// LogQueryOptions filters persisted log entries.
type LogQueryOptions struct {
	Level      string
	RequestID  string
	ActionType string
	Since      time.Time
	Until      time.Time
	Limit      int64
}
