package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/laundry-service/internal/middleware"
)

// quoteTimeout bounds a single solve. The solver's own state budget keeps
// memory in check; this keeps wall time in check.
const quoteTimeout = 10 * time.Second

// QuoteRoutes handles quote and catalog route registration.
type QuoteRoutes struct {
	handler        *Handler
	catalogHandler *CatalogHandler
}

// NewQuoteRoutes creates a new QuoteRoutes instance.
func NewQuoteRoutes(handler *Handler, catalogHandler *CatalogHandler) *QuoteRoutes {
	return &QuoteRoutes{
		handler:        handler,
		catalogHandler: catalogHandler,
	}
}

// RegisterPublicRoutes registers routes that never require authentication.
// Quote calculation and catalog reads are open to any caller.
func (r *QuoteRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/quote", middleware.TimeoutWithDuration(quoteTimeout), r.handler.CalculateQuote)

	if r.catalogHandler != nil {
		rg.GET("/catalog", r.catalogHandler.GetActiveCatalog)
		rg.GET("/delivery-fees", r.catalogHandler.GetDeliveryFees)
	}
}

// RegisterProtectedRoutes registers catalog mutation routes. The given group
// carries JWT middleware when authentication is enabled.
func (r *QuoteRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	if r.catalogHandler == nil {
		return
	}
	rg.PUT("/catalog", r.catalogHandler.UpdateCatalog)
	rg.GET("/catalog/history", r.catalogHandler.ListCatalogs)
}
