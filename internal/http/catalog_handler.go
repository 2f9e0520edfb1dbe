package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/laundry-service/internal/domain/dto"
	"github.com/guttosm/laundry-service/internal/domain/model"
	"github.com/guttosm/laundry-service/internal/i18n"
	"github.com/guttosm/laundry-service/internal/middleware"
	"github.com/guttosm/laundry-service/internal/service"
)

// CatalogHandler provides HTTP handlers for catalog routes.
type CatalogHandler struct {
	catalogService service.CatalogService
	optimizer      service.QuoteOptimizer
	quoteHandler   *Handler
	fallback       model.Catalog
}

// NewCatalogHandler creates a new CatalogHandler instance.
// The fallback catalog is served when no persisted configuration exists.
func NewCatalogHandler(catalogService service.CatalogService, optimizer service.QuoteOptimizer, quoteHandler *Handler, fallback model.Catalog) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		optimizer:      optimizer,
		quoteHandler:   quoteHandler,
		fallback:       fallback,
	}
}

// GetActiveCatalog handles GET /api/catalog requests.
//
// @Summary      Get active catalog
// @Description  Returns the currently active price catalog: discount packs, unit prices and delivery fees
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active catalog"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/catalog [get]
func (h *CatalogHandler) GetActiveCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.catalogService == nil {
		builder.SuccessOK(map[string]interface{}{
			"catalog": h.fallback,
			"version": 0,
		})
		return
	}

	config, err := h.catalogService.GetActive(c.Request.Context())
	if err != nil && err != service.ErrRepositoryNotConfigured {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if config == nil || err == service.ErrRepositoryNotConfigured {
		builder.SuccessOK(map[string]interface{}{
			"catalog": h.fallback,
			"version": 0,
		})
		return
	}

	catalog, err := config.ToModel()
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"catalog":    catalog,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// UpdateCatalog handles PUT /api/catalog requests.
//
// @Summary      Update catalog
// @Description  Stores a new version of the price catalog and makes it active. Invalidates quote caches.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        request body dto.UpdateCatalogRequest true "New catalog"
// @Success      200 {object} dto.SuccessResponse "Updated catalog"
// @Failure      400 {object} dto.ErrorResponse "Bad request - catalog failed validation"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/catalog [put]
func (h *CatalogHandler) UpdateCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.catalogService == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, service.ErrRepositoryNotConfigured)
		return
	}

	var req dto.UpdateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Catalog.Validate(); err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	updatedBy := req.UpdatedBy
	if actor, exists := c.Get(string(middleware.AuthUserKey)); exists {
		if username, ok := actor.(string); ok && username != "" {
			updatedBy = username
		}
	}

	config, err := h.catalogService.Update(c.Request.Context(), req.Catalog, updatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	// New prices make previously computed quotes stale.
	if h.optimizer != nil {
		h.optimizer.InvalidateCache()
	}
	if h.quoteHandler != nil {
		h.quoteHandler.InvalidateCatalogCache()
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_catalog", "Catalog updated", map[string]interface{}{
				"version": config.Version,
			})
		}
	}

	builder.SuccessOK(map[string]interface{}{
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// ListCatalogs handles GET /api/catalog/history requests.
//
// @Summary      List catalog history
// @Description  Returns stored catalog versions, newest first
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Catalog history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/catalog/history [get]
func (h *CatalogHandler) ListCatalogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.catalogService == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, service.ErrRepositoryNotConfigured)
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	configs, err := h.catalogService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(configs)
}

// GetDeliveryFees handles GET /api/delivery-fees requests.
//
// @Summary      Get delivery fees
// @Description  Returns the per-location delivery fee table from the active catalog
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Delivery fee table"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/delivery-fees [get]
func (h *CatalogHandler) GetDeliveryFees(c *gin.Context) {
	builder := NewResponseBuilder(c)

	catalog := h.fallback
	if h.catalogService != nil {
		if config, err := h.catalogService.GetActive(c.Request.Context()); err == nil && config != nil {
			if m, err := config.ToModel(); err == nil {
				catalog = m
			}
		}
	}

	// Fees go out as float euros rounded to 2 decimals, like every other
	// currency figure on the wire.
	fees := make(map[string]float64, len(catalog.DeliveryFee))
	for location, fee := range catalog.DeliveryFee {
		fees[location] = fee.Round(2).InexactFloat64()
	}

	builder.SuccessOK(fees)
}
