package repository

import (
	"context"

	"github.com/guttosm/laundry-service/internal/circuitbreaker"
	"github.com/guttosm/laundry-service/internal/domain/model"
)

// CatalogRepositoryWithCircuitBreaker wraps a catalog repository with circuit
// breaker protection so a struggling database cannot stall quote traffic.
type CatalogRepositoryWithCircuitBreaker struct {
	repo    CatalogRepositoryInterface
	breaker *circuitbreaker.CircuitBreaker
}

// NewCatalogRepositoryWithCircuitBreaker wraps the given repository.
func NewCatalogRepositoryWithCircuitBreaker(repo CatalogRepositoryInterface, breaker *circuitbreaker.CircuitBreaker) *CatalogRepositoryWithCircuitBreaker {
	return &CatalogRepositoryWithCircuitBreaker{repo: repo, breaker: breaker}
}

// GetActive returns the active catalog configuration.
func (r *CatalogRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*CatalogConfig, error) {
	var config *CatalogConfig
	err := r.breaker.Execute(ctx, func() error {
		var innerErr error
		config, innerErr = r.repo.GetActive(ctx)
		return innerErr
	})
	return config, err
}

// Create inserts a new active catalog configuration.
func (r *CatalogRepositoryWithCircuitBreaker) Create(ctx context.Context, catalog model.Catalog, createdBy string) (*CatalogConfig, error) {
	var config *CatalogConfig
	err := r.breaker.Execute(ctx, func() error {
		var innerErr error
		config, innerErr = r.repo.Create(ctx, catalog, createdBy)
		return innerErr
	})
	return config, err
}

// List returns catalog configurations, newest first.
func (r *CatalogRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]CatalogConfig, error) {
	var configs []CatalogConfig
	err := r.breaker.Execute(ctx, func() error {
		var innerErr error
		configs, innerErr = r.repo.List(ctx, limit)
		return innerErr
	})
	return configs, err
}

// LogsRepositoryWithCircuitBreaker wraps a logs repository with circuit
// breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo    LogsRepositoryInterface
	breaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps the given repository.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, breaker *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, breaker: breaker}
}

// Create inserts a single log entry.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *LogEntryDocument) error {
	return r.breaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, doc)
	})
}

// CreateMany inserts log entries in bulk.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, docs []*LogEntryDocument) error {
	return r.breaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, docs)
	})
}

// Query returns log entries matching the options.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]LogEntryDocument, error) {
	var docs []LogEntryDocument
	err := r.breaker.Execute(ctx, func() error {
		var innerErr error
		docs, innerErr = r.repo.Query(ctx, opts)
		return innerErr
	})
	return docs, err
}

// Count returns the number of matching log entries.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	var count int64
	err := r.breaker.Execute(ctx, func() error {
		var innerErr error
		count, innerErr = r.repo.Count(ctx, opts)
		return innerErr
	})
	return count, err
}

var (
	_ CatalogRepositoryInterface = (*CatalogRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface    = (*LogsRepositoryWithCircuitBreaker)(nil)
)
