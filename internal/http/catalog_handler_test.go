package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/laundry-service/internal/domain/dto"
	"github.com/guttosm/laundry-service/internal/domain/model"
	"github.com/guttosm/laundry-service/internal/repository"
	"github.com/guttosm/laundry-service/internal/service"
)

func newCatalogRouter(t *testing.T, catalogService service.CatalogService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	optimizer := newTestOptimizer(t)
	quoteHandler := NewHandler(optimizer, catalogService)
	handler := NewCatalogHandler(catalogService, optimizer, quoteHandler, model.DefaultCatalog())

	router := gin.New()
	router.GET("/api/catalog", handler.GetActiveCatalog)
	router.PUT("/api/catalog", handler.UpdateCatalog)
	router.GET("/api/catalog/history", handler.ListCatalogs)
	router.GET("/api/delivery-fees", handler.GetDeliveryFees)
	return router
}

func TestGetActiveCatalog_FallbackWithoutService(t *testing.T) {
	router := newCatalogRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Version int           `json:"version"`
			Catalog model.Catalog `json:"catalog"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Data.Version)
	assert.Len(t, resp.Data.Catalog.MixedPacks, 7)
}

func TestGetActiveCatalog_FallbackWhenNothingPersisted(t *testing.T) {
	router := newCatalogRouter(t, &fakeCatalogService{active: nil})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":0`)
}

func TestGetActiveCatalog_ServiceError(t *testing.T) {
	router := newCatalogRouter(t, &fakeCatalogService{activeErr: errors.New("mongo down")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdateCatalog(t *testing.T) {
	validBody := func(t *testing.T) []byte {
		t.Helper()
		body, err := json.Marshal(dto.UpdateCatalogRequest{
			Catalog:   model.DefaultCatalog(),
			UpdatedBy: "ops",
		})
		require.NoError(t, err)
		return body
	}

	t.Run("no database configured", func(t *testing.T) {
		router := newCatalogRouter(t, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/catalog", bytes.NewReader(validBody(t)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("persists and reports the new version", func(t *testing.T) {
		router := newCatalogRouter(t, &fakeCatalogService{
			updated: &repository.CatalogConfig{Version: 2, Active: true},
		})

		req := httptest.NewRequest(http.MethodPut, "/api/catalog", bytes.NewReader(validBody(t)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"version":2`)
	})

	t.Run("rejects an invalid catalog", func(t *testing.T) {
		router := newCatalogRouter(t, &fakeCatalogService{})

		body := `{"catalog": {"packs_mistos": [], "packs_camisas": [], "packs_lencois": [], "avulso": {}, "entrega": {}}}`
		req := httptest.NewRequest(http.MethodPut, "/api/catalog", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "catalog defines no packs")
	})

	t.Run("storage error", func(t *testing.T) {
		router := newCatalogRouter(t, &fakeCatalogService{updateErr: errors.New("write failed")})

		req := httptest.NewRequest(http.MethodPut, "/api/catalog", bytes.NewReader(validBody(t)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestListCatalogs(t *testing.T) {
	t.Run("no database configured", func(t *testing.T) {
		router := newCatalogRouter(t, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/history", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("returns stored versions", func(t *testing.T) {
		router := newCatalogRouter(t, &fakeCatalogService{
			list: []repository.CatalogConfig{{Version: 2, Active: true}, {Version: 1}},
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/history?limit=5", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []repository.CatalogConfig `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Data, 2)
		assert.Equal(t, 2, resp.Data[0].Version)
	})
}

func TestGetDeliveryFees(t *testing.T) {
	router := newCatalogRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/delivery-fees", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data map[string]float64 `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 5.0, resp.Data["montijo"], 1e-9)
	assert.InDelta(t, 0.0, resp.Data["lisboa"], 1e-9)
	assert.Contains(t, resp.Data, "default")

	// The raw body must carry plain JSON numbers, not decimal strings.
	assert.Contains(t, w.Body.String(), `"montijo":5`)
}
