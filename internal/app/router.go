// Package app provides router configuration.
package app

import (
	"github.com/guttosm/laundry-service/config"
	"github.com/guttosm/laundry-service/internal/http"
	"github.com/guttosm/laundry-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler        *http.Handler
	CatalogHandler *http.CatalogHandler
	HealthHandler  *http.HealthHandler
	Config         http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var catalogService service.CatalogService
	var loggingService service.LoggingService
	if dbComponents != nil {
		catalogService = service.NewCatalogService(dbComponents.CatalogRepo)
		loggingService = dbComponents.LoggingService
	}

	handler := http.NewHandler(services.Optimizer, catalogService)
	catalogHandler := http.NewCatalogHandler(catalogService, services.Optimizer, handler, services.Catalog)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.CatalogCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_catalog", dbComponents.CatalogCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	// Catalog writes require authentication only when enabled and credentials
	// are configured.
	var authService service.AuthService
	if cfg.Auth.Enabled && cfg.Auth.AdminPasswordHash != "" {
		authService = service.NewAdminAuthService(cfg.Auth)
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		LoggingService: loggingService,
		CatalogService: catalogService,
		AuthService:    authService,
		Optimizer:      services.Optimizer,
	}

	return &RouterComponents{
		Handler:        handler,
		CatalogHandler: catalogHandler,
		HealthHandler:  healthHandler,
		Config:         routerCfg,
	}
}
