package service

import (
	"context"

	"github.com/guttosm/laundry-service/internal/domain/model"
	"github.com/guttosm/laundry-service/internal/repository"
)

// LoggingService defines the interface for persisted logging operations.
type LoggingService interface {
	// CreateLog stores a single log entry.
	CreateLog(ctx context.Context, entry *model.LogEntry) error
	// CreateLogs stores multiple log entries in bulk.
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error
	// QueryLogs retrieves log entries matching the query options.
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	// CountLogs returns the count of log entries matching the query options.
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl implements LoggingService over a logs repository.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a new logging service implementation.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo}
}

// CreateLog stores a single log entry.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	return s.repo.Create(ctx, entryToDocument(entry))
}

// CreateLogs stores multiple log entries in bulk.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]*repository.LogEntryDocument, len(entries))
	for i, entry := range entries {
		docs[i] = entryToDocument(entry)
	}
	return s.repo.CreateMany(ctx, docs)
}

// QueryLogs retrieves log entries matching the query options.
func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	docs, err := s.repo.Query(ctx, opts)
	if err != nil {
		return nil, err
	}
	entries := make([]model.LogEntry, len(docs))
	for i, doc := range docs {
		entries[i] = documentToEntry(&doc)
	}
	return entries, nil
}

// CountLogs returns the count of matching log entries.
func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return s.repo.Count(ctx, opts)
}

func entryToDocument(e *model.LogEntry) *repository.LogEntryDocument {
	return &repository.LogEntryDocument{
		Timestamp:  e.Timestamp,
		Level:      e.Level,
		Message:    e.Message,
		RequestID:  e.RequestID,
		Method:     e.Method,
		Path:       e.Path,
		StatusCode: e.StatusCode,
		Duration:   e.Duration,
		IP:         e.IP,
		UserAgent:  e.UserAgent,
		ActionType: e.ActionType,
		Actor:      e.Actor,
		Error:      e.Error,
		Fields:     e.Fields,
	}
}

func documentToEntry(d *repository.LogEntryDocument) model.LogEntry {
	return model.LogEntry{
		Timestamp:  d.Timestamp,
		Level:      d.Level,
		Message:    d.Message,
		RequestID:  d.RequestID,
		Method:     d.Method,
		Path:       d.Path,
		StatusCode: d.StatusCode,
		Duration:   d.Duration,
		IP:         d.IP,
		UserAgent:  d.UserAgent,
		ActionType: d.ActionType,
		Actor:      d.Actor,
		Error:      d.Error,
		Fields:     d.Fields,
	}
}
