// Package model defines the core domain entities for the laundry service.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Item type keys accepted in an order. Keys are the Portuguese names used
// by the shop's price list and kept verbatim on the wire.
const (
	ItemMiscGarment = "peca_variada"
	ItemShirt       = "camisa"
	ItemSimpleDress = "vestido_simples"
	ItemBeadedDress = "vestido_frisado"
	ItemSuit        = "fato"
	ItemCoat        = "casaco"
	ItemTowel       = "toalha"
	ItemSheet       = "lencol"
)

// SpecialItems are priced per unit only and never enter pack optimization.
var SpecialItems = []string{
	ItemSimpleDress,
	ItemBeadedDress,
	ItemSuit,
	ItemCoat,
	ItemTowel,
}

// DefaultDeliveryLocation is the fee table key used when no location is given
// or the given location is unknown.
const DefaultDeliveryLocation = "default"

// MixedPack is a bundle covering garments of any kind up to Capacity,
// of which at most ShirtLimit may be shirts.
type MixedPack struct {
	Label      string          `json:"label"`
	Capacity   int             `json:"capacity"`
	ShirtLimit int             `json:"shirt_limit"`
	Price      decimal.Decimal `json:"price"`
}

// SinglePack is a bundle covering one item family (shirts or sheets).
type SinglePack struct {
	Label    string          `json:"label"`
	Capacity int             `json:"capacity"`
	Price    decimal.Decimal `json:"price"`
}

// Catalog is the full pricing table: discount packs, à-la-carte unit prices
// and delivery fees. It is immutable, process-wide configuration; a loaded
// Catalog is never mutated.
type Catalog struct {
	MixedPacks  []MixedPack                `json:"packs_mistos"`
	ShirtPacks  []SinglePack               `json:"packs_camisas"`
	SheetPacks  []SinglePack               `json:"packs_lencois"`
	UnitPrices  map[string]decimal.Decimal `json:"avulso"`
	DeliveryFee map[string]decimal.Decimal `json:"entrega"`
}

// DefaultCatalog returns the shop's standard price list. Prices are EUR.
func DefaultCatalog() Catalog {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return Catalog{
		MixedPacks: []MixedPack{
			{Label: "20", Capacity: 20, ShirtLimit: 2, Price: price("10.0")},
			{Label: "40", Capacity: 40, ShirtLimit: 4, Price: price("20.0")},
			{Label: "60", Capacity: 60, ShirtLimit: 5, Price: price("30.0")},
			{Label: "80", Capacity: 80, ShirtLimit: 5, Price: price("37.5")},
			{Label: "100", Capacity: 100, ShirtLimit: 6, Price: price("45.0")},
			{Label: "150", Capacity: 150, ShirtLimit: 6, Price: price("65.0")},
			{Label: "200", Capacity: 200, ShirtLimit: 7, Price: price("85.0")},
		},
		ShirtPacks: []SinglePack{
			{Label: "10", Capacity: 10, Price: price("7.5")},
			{Label: "20", Capacity: 20, Price: price("14.0")},
			{Label: "50", Capacity: 50, Price: price("37.5")},
		},
		SheetPacks: []SinglePack{
			{Label: "10", Capacity: 10, Price: price("9.5")},
			{Label: "20", Capacity: 20, Price: price("18.0")},
		},
		UnitPrices: map[string]decimal.Decimal{
			ItemMiscGarment: price("0.80"),
			ItemShirt:       price("0.75"),
			ItemSimpleDress: price("7.0"),
			ItemBeadedDress: price("12.5"),
			ItemSuit:        price("5.5"),
			ItemCoat:        price("3.5"),
			ItemTowel:       price("3.5"),
			ItemSheet:       price("1.0"),
		},
		DeliveryFee: map[string]decimal.Decimal{
			"montijo": price("5.0"),
			"lisboa":  price("0.0"),
			"porto":   price("0.0"),
			"default": price("5.0"),
		},
	}
}

// ItemKeys returns the recognized item type keys for this catalog.
func (c Catalog) ItemKeys() []string {
	keys := make([]string, 0, len(c.UnitPrices))
	for _, k := range []string{
		ItemMiscGarment, ItemShirt, ItemSimpleDress, ItemBeadedDress,
		ItemSuit, ItemCoat, ItemTowel, ItemSheet,
	} {
		if _, ok := c.UnitPrices[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// ResolveDeliveryFee returns the fee for the given location, matched
// case-insensitively. Unknown locations fall back to the default fee;
// this is a deliberate fallback, not an error.
func (c Catalog) ResolveDeliveryFee(location string) decimal.Decimal {
	key := strings.ToLower(strings.TrimSpace(location))
	if key == "" {
		key = DefaultDeliveryLocation
	}
	if fee, ok := c.DeliveryFee[key]; ok {
		return fee
	}
	return c.DeliveryFee[DefaultDeliveryLocation]
}

// Validate checks the structural invariants a catalog must satisfy before
// it can be activated.
func (c Catalog) Validate() error {
	if len(c.MixedPacks) == 0 && len(c.ShirtPacks) == 0 && len(c.SheetPacks) == 0 {
		return ErrCatalogNoPacks
	}
	for _, p := range c.MixedPacks {
		if p.Capacity <= 0 || p.ShirtLimit < 0 || p.ShirtLimit > p.Capacity || p.Price.IsNegative() {
			return ErrCatalogInvalidPack
		}
	}
	for _, p := range c.ShirtPacks {
		if p.Capacity <= 0 || p.Price.IsNegative() {
			return ErrCatalogInvalidPack
		}
	}
	for _, p := range c.SheetPacks {
		if p.Capacity <= 0 || p.Price.IsNegative() {
			return ErrCatalogInvalidPack
		}
	}
	for _, key := range []string{ItemMiscGarment, ItemShirt, ItemSheet} {
		if _, ok := c.UnitPrices[key]; !ok {
			return ErrCatalogMissingUnitPrice
		}
	}
	for _, p := range c.UnitPrices {
		if p.IsNegative() {
			return ErrCatalogInvalidUnitPrice
		}
	}
	if _, ok := c.DeliveryFee[DefaultDeliveryLocation]; !ok {
		return ErrCatalogMissingDefaultFee
	}
	return nil
}
