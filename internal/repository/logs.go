package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/laundry-service/internal/domain/model"
)

// LogEntryDocument is the MongoDB representation of a log entry.
type LogEntryDocument struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty"`
	Timestamp  time.Time              `bson:"timestamp"`
	Level      string                 `bson:"level"`
	Message    string                 `bson:"message"`
	RequestID  string                 `bson:"request_id,omitempty"`
	Method     string                 `bson:"method,omitempty"`
	Path       string                 `bson:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty"`
	Duration   int64                  `bson:"duration_ms,omitempty"`
	IP         string                 `bson:"ip,omitempty"`
	UserAgent  string                 `bson:"user_agent,omitempty"`
	ActionType string                 `bson:"action_type,omitempty"`
	Actor      string                 `bson:"actor,omitempty"`
	Error      string                 `bson:"error,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty"`
}

// LogsRepository persists log entries.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{collection: db.Logs}
}

// Create inserts a single log entry.
func (r *LogsRepository) Create(ctx context.Context, doc *LogEntryDocument) error {
	if doc.Timestamp.IsZero() {
		doc.Timestamp = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// CreateMany inserts log entries in bulk.
func (r *LogsRepository) CreateMany(ctx context.Context, docs []*LogEntryDocument) error {
	if len(docs) == 0 {
		return nil
	}
	items := make([]interface{}, len(docs))
	for i, doc := range docs {
		if doc.Timestamp.IsZero() {
			doc.Timestamp = time.Now()
		}
		items[i] = doc
	}
	_, err := r.collection.InsertMany(ctx, items)
	return err
}

// Query returns log entries matching the options, newest first.
func (r *LogsRepository) Query(ctx context.Context, opts model.LogQueryOptions) ([]LogEntryDocument, error) {
	filter := buildLogFilter(opts)

	limit := opts.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	findOpts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []LogEntryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Count returns the number of log entries matching the options.
func (r *LogsRepository) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, buildLogFilter(opts))
}

func buildLogFilter(opts model.LogQueryOptions) bson.M {
	filter := bson.M{}
	if opts.Level != "" {
		filter["level"] = opts.Level
	}
	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.ActionType != "" {
		filter["action_type"] = opts.ActionType
	}
	timeRange := bson.M{}
	if !opts.Since.IsZero() {
		timeRange["$gte"] = opts.Since
	}
	if !opts.Until.IsZero() {
		timeRange["$lte"] = opts.Until
	}
	if len(timeRange) > 0 {
		filter["timestamp"] = timeRange
	}
	return filter
}
