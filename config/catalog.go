package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/guttosm/laundry-service/internal/domain/model"
)

// catalogFile is the YAML representation of a price catalog. Prices are
// decimal strings so currency values survive parsing exactly.
type catalogFile struct {
	MixedPacks []struct {
		Label      string `yaml:"label"`
		Capacity   int    `yaml:"capacity"`
		ShirtLimit int    `yaml:"shirt_limit"`
		Price      string `yaml:"price"`
	} `yaml:"mixed_packs"`
	ShirtPacks []struct {
		Label    string `yaml:"label"`
		Capacity int    `yaml:"capacity"`
		Price    string `yaml:"price"`
	} `yaml:"shirt_packs"`
	SheetPacks []struct {
		Label    string `yaml:"label"`
		Capacity int    `yaml:"capacity"`
		Price    string `yaml:"price"`
	} `yaml:"sheet_packs"`
	UnitPrices   map[string]string `yaml:"unit_prices"`
	DeliveryFees map[string]string `yaml:"delivery_fees"`
}

// LoadCatalog returns the catalog to run with: the YAML file at path when
// given, otherwise the embedded default price list. A file that exists but
// fails to parse or validate is an error, not a silent fallback.
func LoadCatalog(path string) (model.Catalog, error) {
	if path == "" {
		return model.DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return model.Catalog{}, fmt.Errorf("parse catalog file: %w", err)
	}

	catalog, err := file.toModel()
	if err != nil {
		return model.Catalog{}, fmt.Errorf("convert catalog file: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return model.Catalog{}, fmt.Errorf("validate catalog file: %w", err)
	}
	return catalog, nil
}

func (f catalogFile) toModel() (model.Catalog, error) {
	c := model.Catalog{
		UnitPrices:  make(map[string]decimal.Decimal, len(f.UnitPrices)),
		DeliveryFee: make(map[string]decimal.Decimal, len(f.DeliveryFees)),
	}
	for _, p := range f.MixedPacks {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("mixed pack %q: %w", p.Label, err)
		}
		c.MixedPacks = append(c.MixedPacks, model.MixedPack{
			Label:      p.Label,
			Capacity:   p.Capacity,
			ShirtLimit: p.ShirtLimit,
			Price:      price,
		})
	}
	for _, p := range f.ShirtPacks {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("shirt pack %q: %w", p.Label, err)
		}
		c.ShirtPacks = append(c.ShirtPacks, model.SinglePack{Label: p.Label, Capacity: p.Capacity, Price: price})
	}
	for _, p := range f.SheetPacks {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("sheet pack %q: %w", p.Label, err)
		}
		c.SheetPacks = append(c.SheetPacks, model.SinglePack{Label: p.Label, Capacity: p.Capacity, Price: price})
	}
	for key, raw := range f.UnitPrices {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("unit price %q: %w", key, err)
		}
		c.UnitPrices[key] = price
	}
	for key, raw := range f.DeliveryFees {
		fee, err := decimal.NewFromString(raw)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("delivery fee %q: %w", key, err)
		}
		c.DeliveryFee[key] = fee
	}
	return c, nil
}
