package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOrder(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("fills missing keys with zero", func(t *testing.T) {
		order, err := NormalizeOrder(map[string]int{ItemShirt: 3}, catalog)

		require.NoError(t, err)
		assert.Len(t, order, len(catalog.UnitPrices))
		assert.Equal(t, 3, order[ItemShirt])
		assert.Equal(t, 0, order[ItemSheet])
		assert.Equal(t, 0, order[ItemCoat])
	})

	t.Run("empty input yields an all-zero order", func(t *testing.T) {
		order, err := NormalizeOrder(nil, catalog)

		require.NoError(t, err)
		assert.Equal(t, 0, order.Total())
	})

	t.Run("unknown keys are rejected sorted", func(t *testing.T) {
		_, err := NormalizeOrder(map[string]int{
			"toalhas": 1,
			"camisas": 2,
			ItemShirt: 3,
		}, catalog)

		var unknownErr *UnknownItemsError
		require.True(t, errors.As(err, &unknownErr))
		assert.Equal(t, []string{"camisas", "toalhas"}, unknownErr.Keys)
		assert.Contains(t, err.Error(), "camisas, toalhas")
	})

	t.Run("negative quantities are rejected", func(t *testing.T) {
		_, err := NormalizeOrder(map[string]int{
			ItemShirt: -1,
			ItemTowel: -2,
		}, catalog)

		var qtyErr *InvalidQuantityError
		require.True(t, errors.As(err, &qtyErr))
		assert.Equal(t, []string{ItemShirt, ItemTowel}, qtyErr.Keys)
	})

	t.Run("unknown keys take precedence over negative quantities", func(t *testing.T) {
		_, err := NormalizeOrder(map[string]int{
			"meias":   1,
			ItemShirt: -1,
		}, catalog)

		var unknownErr *UnknownItemsError
		assert.True(t, errors.As(err, &unknownErr))
	})

	t.Run("zero quantities are accepted", func(t *testing.T) {
		order, err := NormalizeOrder(map[string]int{ItemSuit: 0}, catalog)

		require.NoError(t, err)
		assert.Equal(t, 0, order[ItemSuit])
	})
}

func TestOrder_Total(t *testing.T) {
	assert.Equal(t, 0, Order{}.Total())
	assert.Equal(t, 6, Order{ItemShirt: 2, ItemSheet: 4}.Total())
}
