package repository

import (
	"context"

	"github.com/guttosm/laundry-service/internal/domain/model"
)

// CatalogRepositoryInterface abstracts catalog configuration persistence.
type CatalogRepositoryInterface interface {
	GetActive(ctx context.Context) (*CatalogConfig, error)
	Create(ctx context.Context, catalog model.Catalog, createdBy string) (*CatalogConfig, error)
	List(ctx context.Context, limit int) ([]CatalogConfig, error)
}

// LogsRepositoryInterface abstracts log persistence.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, doc *LogEntryDocument) error
	CreateMany(ctx context.Context, docs []*LogEntryDocument) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]LogEntryDocument, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

var (
	_ CatalogRepositoryInterface = (*CatalogRepository)(nil)
	_ LogsRepositoryInterface    = (*LogsRepository)(nil)
)
