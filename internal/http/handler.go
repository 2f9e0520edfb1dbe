package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/laundry-service/internal/domain/dto"
	"github.com/guttosm/laundry-service/internal/domain/model"
	"github.com/guttosm/laundry-service/internal/i18n"
	"github.com/guttosm/laundry-service/internal/metrics"
	"github.com/guttosm/laundry-service/internal/middleware"
	"github.com/guttosm/laundry-service/internal/service"
)

// catalogCache provides thread-safe caching of the active catalog.
type catalogCache struct {
	catalog   atomic.Value // holds model.Catalog
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newCatalogCache creates a new catalog cache with the given TTL.
func newCatalogCache(ttl time.Duration) *catalogCache {
	c := &catalogCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached catalog if valid, or nil if cache is expired/empty.
func (c *catalogCache) get() *model.Catalog {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if cat := c.catalog.Load(); cat != nil {
				if m, ok := cat.(model.Catalog); ok {
					return &m
				}
			}
		}
	}
	return nil
}

// set stores the catalog in the cache with TTL.
func (c *catalogCache) set(catalog model.Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.catalog.Store(catalog)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *catalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for quote calculation routes.
type Handler struct {
	optimizer      service.QuoteOptimizer
	catalogService service.CatalogService
	catalogCache   *catalogCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCatalogCacheTTL sets the TTL for active catalog caching.
func WithCatalogCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.catalogCache = newCatalogCache(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(optimizer service.QuoteOptimizer, catalogService service.CatalogService, opts ...HandlerOption) *Handler {
	h := &Handler{
		optimizer:      optimizer,
		catalogService: catalogService,
		catalogCache:   newCatalogCache(30 * time.Second), // Default 30s cache
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getActiveCatalog retrieves the active catalog from cache or database.
// Returns nil when no persisted catalog exists; the optimizer then uses
// the catalog it was configured with.
func (h *Handler) getActiveCatalog(ctx context.Context) *model.Catalog {
	if cat := h.catalogCache.get(); cat != nil {
		return cat
	}

	if h.catalogService == nil {
		return nil
	}

	// Use a timeout for database fetch
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	config, err := h.catalogService.GetActive(ctx)
	if err != nil || config == nil {
		return nil
	}

	catalog, err := config.ToModel()
	if err != nil {
		return nil
	}

	h.catalogCache.set(catalog)
	return &catalog
}

// InvalidateCatalogCache invalidates the active catalog cache.
// Call this when the catalog is updated.
func (h *Handler) InvalidateCatalogCache() {
	h.catalogCache.invalidate()
}

// CalculateQuote handles POST /api/quote requests.
//
// @Summary      Calculate minimum-cost quote for a laundry order
// @Description  Computes the cheapest combination of discount packs and individually priced pieces that covers the order, plus the delivery fee for the given location. Pack purchases may exceed the ordered quantities when overbuying is cheaper.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Item counts and delivery location"
// @Success      200 {object} dto.SuccessResponse "Successful quote"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown items or invalid quantities"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/quote [post]
func (h *Handler) CalculateQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.QuoteRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "quote", "Quote requested", map[string]interface{}{
				"items":             req.Items,
				"delivery_location": req.DeliveryLocation,
			})
		}
	}

	start := time.Now()
	var quote model.Quote

	if catalog := h.getActiveCatalog(c.Request.Context()); catalog != nil {
		quote, err = h.optimizer.OptimizeWithCatalog(req.Items, req.DeliveryLocation, *catalog)
	} else {
		quote, err = h.optimizer.Optimize(req.Items, req.DeliveryLocation)
	}
	duration := time.Since(start)

	if err != nil {
		var unknownErr *model.UnknownItemsError
		var quantityErr *model.InvalidQuantityError
		var solverErr *service.SolverError

		switch {
		case errors.As(err, &unknownErr):
			metrics.RecordQuoteSolve(duration, "validation_error")
			builder.ErrorWithMessage(http.StatusBadRequest, unknownErr.Error(), err)
		case errors.As(err, &quantityErr):
			metrics.RecordQuoteSolve(duration, "validation_error")
			builder.ErrorWithMessage(http.StatusBadRequest, quantityErr.Error(), err)
		case errors.As(err, &solverErr):
			metrics.RecordQuoteSolve(duration, "solver_error")
			builder.Error(http.StatusInternalServerError, i18n.ErrKeySolverFailure, err)
		default:
			metrics.RecordQuoteSolve(duration, "error")
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	metrics.RecordQuoteSolve(duration, "success")
	builder.SuccessOK(quote)
}
