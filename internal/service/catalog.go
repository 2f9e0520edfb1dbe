package service

import (
	"context"
	"errors"

	"github.com/guttosm/laundry-service/internal/domain/model"
	"github.com/guttosm/laundry-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// CatalogService provides catalog configuration operations.
type CatalogService interface {
	// GetActive returns the active persisted catalog, or nil when the
	// database holds none and the embedded default applies.
	GetActive(ctx context.Context) (*repository.CatalogConfig, error)
	// Update validates and activates a replacement catalog.
	Update(ctx context.Context, catalog model.Catalog, updatedBy string) (*repository.CatalogConfig, error)
	// List returns catalog versions, newest first.
	List(ctx context.Context, limit int) ([]repository.CatalogConfig, error)
}

// CatalogServiceImpl implements CatalogService over a catalog repository.
type CatalogServiceImpl struct {
	repo repository.CatalogRepositoryInterface
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.CatalogRepositoryInterface) CatalogService {
	return &CatalogServiceImpl{repo: repo}
}

// GetActive returns the active persisted catalog configuration.
func (s *CatalogServiceImpl) GetActive(ctx context.Context) (*repository.CatalogConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.GetActive(ctx)
}

// Update validates the catalog and persists it as the new active version.
func (s *CatalogServiceImpl) Update(ctx context.Context, catalog model.Catalog, updatedBy string) (*repository.CatalogConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, catalog, updatedBy)
}

// List returns catalog versions, newest first.
func (s *CatalogServiceImpl) List(ctx context.Context, limit int) ([]repository.CatalogConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, limit)
}
