package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	require.NoError(t, c.Validate())
	assert.Len(t, c.MixedPacks, 7)
	assert.Len(t, c.ShirtPacks, 3)
	assert.Len(t, c.SheetPacks, 2)
	assert.True(t, c.UnitPrices[ItemShirt].Equal(decimal.RequireFromString("0.75")))
	assert.True(t, c.DeliveryFee["montijo"].Equal(decimal.RequireFromString("5.0")))
}

func TestCatalog_Validate(t *testing.T) {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	tests := []struct {
		name    string
		mutate  func(*Catalog)
		wantErr error
	}{
		{
			name:   "default catalog is valid",
			mutate: func(c *Catalog) {},
		},
		{
			name: "no packs at all",
			mutate: func(c *Catalog) {
				c.MixedPacks = nil
				c.ShirtPacks = nil
				c.SheetPacks = nil
			},
			wantErr: ErrCatalogNoPacks,
		},
		{
			name: "mixed pack with zero capacity",
			mutate: func(c *Catalog) {
				c.MixedPacks = []MixedPack{{Label: "20", Capacity: 0, ShirtLimit: 2, Price: price("10")}}
			},
			wantErr: ErrCatalogInvalidPack,
		},
		{
			name: "shirt limit above capacity",
			mutate: func(c *Catalog) {
				c.MixedPacks = []MixedPack{{Label: "20", Capacity: 20, ShirtLimit: 21, Price: price("10")}}
			},
			wantErr: ErrCatalogInvalidPack,
		},
		{
			name: "negative shirt limit",
			mutate: func(c *Catalog) {
				c.MixedPacks = []MixedPack{{Label: "20", Capacity: 20, ShirtLimit: -1, Price: price("10")}}
			},
			wantErr: ErrCatalogInvalidPack,
		},
		{
			name: "negative mixed pack price",
			mutate: func(c *Catalog) {
				c.MixedPacks = []MixedPack{{Label: "20", Capacity: 20, ShirtLimit: 2, Price: price("-1")}}
			},
			wantErr: ErrCatalogInvalidPack,
		},
		{
			name: "shirt pack with zero capacity",
			mutate: func(c *Catalog) {
				c.ShirtPacks = []SinglePack{{Label: "10", Capacity: 0, Price: price("7.5")}}
			},
			wantErr: ErrCatalogInvalidPack,
		},
		{
			name: "sheet pack with negative price",
			mutate: func(c *Catalog) {
				c.SheetPacks = []SinglePack{{Label: "10", Capacity: 10, Price: price("-9.5")}}
			},
			wantErr: ErrCatalogInvalidPack,
		},
		{
			name: "missing shirt unit price",
			mutate: func(c *Catalog) {
				prices := make(map[string]decimal.Decimal, len(c.UnitPrices))
				for k, v := range c.UnitPrices {
					prices[k] = v
				}
				delete(prices, ItemShirt)
				c.UnitPrices = prices
			},
			wantErr: ErrCatalogMissingUnitPrice,
		},
		{
			name: "negative unit price",
			mutate: func(c *Catalog) {
				prices := make(map[string]decimal.Decimal, len(c.UnitPrices))
				for k, v := range c.UnitPrices {
					prices[k] = v
				}
				prices[ItemTowel] = price("-3.5")
				c.UnitPrices = prices
			},
			wantErr: ErrCatalogInvalidUnitPrice,
		},
		{
			name: "missing default delivery fee",
			mutate: func(c *Catalog) {
				c.DeliveryFee = map[string]decimal.Decimal{"lisboa": price("0")}
			},
			wantErr: ErrCatalogMissingDefaultFee,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := DefaultCatalog()
			tt.mutate(&catalog)

			err := catalog.Validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalog_ResolveDeliveryFee(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name     string
		location string
		want     string
	}{
		{"known location", "montijo", "5.0"},
		{"free location", "lisboa", "0.0"},
		{"case insensitive", "MonTiJo", "5.0"},
		{"surrounding whitespace", "  porto ", "0.0"},
		{"unknown location falls back", "faro", "5.0"},
		{"empty location falls back", "", "5.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := catalog.ResolveDeliveryFee(tt.location)
			assert.True(t, fee.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", fee, tt.want)
		})
	}
}

func TestCatalog_ItemKeys(t *testing.T) {
	catalog := DefaultCatalog()

	keys := catalog.ItemKeys()

	assert.Len(t, keys, 8)
	assert.Contains(t, keys, ItemMiscGarment)
	assert.Contains(t, keys, ItemSheet)
}
