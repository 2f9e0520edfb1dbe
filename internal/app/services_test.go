package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/laundry-service/config"
)

func TestInitializeServices(t *testing.T) {
	t.Run("defaults to the embedded catalog", func(t *testing.T) {
		cfg := config.Config{
			Cache: config.CacheConfig{Size: 100, TTL: time.Minute},
		}

		services, err := InitializeServices(cfg)

		require.NoError(t, err)
		require.NotNil(t, services.Optimizer)
		assert.Len(t, services.Catalog.MixedPacks, 7)

		quote, err := services.Optimizer.Optimize(map[string]int{"camisa": 12}, "lisboa")
		require.NoError(t, err)
		assert.InDelta(t, 9.0, quote.TotalCost, 1e-9)
	})

	t.Run("cache disabled", func(t *testing.T) {
		services, err := InitializeServices(config.Config{})

		require.NoError(t, err)
		assert.NotNil(t, services.Optimizer)
	})

	t.Run("catalog file overrides prices", func(t *testing.T) {
		content := `
shirt_packs:
  - label: "10"
    capacity: 10
    price: "6.0"
unit_prices:
  peca_variada: "0.80"
  camisa: "0.70"
  lencol: "1.0"
delivery_fees:
  default: "2.0"
`
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		services, err := InitializeServices(config.Config{
			Catalog: config.CatalogConfig{File: path},
		})

		require.NoError(t, err)

		// 12 shirts: one 10-pack at 6.0 plus 2 singles at 0.70, default fee 2.0.
		quote, err := services.Optimizer.Optimize(map[string]int{"camisa": 12}, "")
		require.NoError(t, err)
		assert.InDelta(t, 9.4, quote.TotalCost, 1e-9)
	})

	t.Run("missing catalog file fails startup", func(t *testing.T) {
		_, err := InitializeServices(config.Config{
			Catalog: config.CatalogConfig{File: filepath.Join(t.TempDir(), "nope.yaml")},
		})

		assert.Error(t, err)
	})
}
