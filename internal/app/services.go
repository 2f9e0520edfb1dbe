// Package app provides service initialization.
package app

import (
	"github.com/guttosm/laundry-service/config"
	"github.com/guttosm/laundry-service/internal/domain/model"
	"github.com/guttosm/laundry-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Optimizer service.QuoteOptimizer
	Catalog   model.Catalog
}

// InitializeServices initializes business logic services.
// The boot catalog comes from the optional catalog file, falling back to the
// embedded default price list. A persisted catalog, when present, overrides
// it per request.
func InitializeServices(cfg config.Config) (*ServiceComponents, error) {
	catalog, err := config.LoadCatalog(cfg.Catalog.File)
	if err != nil {
		return nil, err
	}
	if cfg.Catalog.File != "" {
		log.Info().Str("file", cfg.Catalog.File).Msg("Loaded catalog from file")
	}

	var opts []service.Option
	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithQuoteCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	optimizer, err := service.NewOptimizerService(catalog, opts...)
	if err != nil {
		return nil, err
	}

	return &ServiceComponents{
		Optimizer: optimizer,
		Catalog:   catalog,
	}, nil
}
