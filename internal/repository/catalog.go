package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/laundry-service/internal/domain/model"
)

// CatalogConfig is a versioned catalog configuration document. Prices are
// stored as decimal strings so currency values round-trip exactly.
type CatalogConfig struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	MixedPacks []mixedPackDocument `bson:"mixed_packs" json:"mixed_packs"`
	ShirtPacks []packDocument      `bson:"shirt_packs" json:"shirt_packs"`
	SheetPacks []packDocument      `bson:"sheet_packs" json:"sheet_packs"`
	UnitPrices map[string]string   `bson:"unit_prices" json:"unit_prices"`
	Fees       map[string]string   `bson:"delivery_fees" json:"delivery_fees"`
	Active     bool                `bson:"active" json:"active"`
	Version    int                 `bson:"version" json:"version"`
	CreatedAt  time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time           `bson:"updated_at" json:"updated_at"`
	CreatedBy  string              `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

type mixedPackDocument struct {
	Label      string `bson:"label"`
	Capacity   int    `bson:"capacity"`
	ShirtLimit int    `bson:"shirt_limit"`
	Price      string `bson:"price"`
}

type packDocument struct {
	Label    string `bson:"label"`
	Capacity int    `bson:"capacity"`
	Price    string `bson:"price"`
}

// ToModel converts the document into a domain catalog.
func (c *CatalogConfig) ToModel() (model.Catalog, error) {
	out := model.Catalog{
		UnitPrices:  make(map[string]decimal.Decimal, len(c.UnitPrices)),
		DeliveryFee: make(map[string]decimal.Decimal, len(c.Fees)),
	}
	for _, p := range c.MixedPacks {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("mixed pack %q: %w", p.Label, err)
		}
		out.MixedPacks = append(out.MixedPacks, model.MixedPack{
			Label: p.Label, Capacity: p.Capacity, ShirtLimit: p.ShirtLimit, Price: price,
		})
	}
	for _, p := range c.ShirtPacks {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("shirt pack %q: %w", p.Label, err)
		}
		out.ShirtPacks = append(out.ShirtPacks, model.SinglePack{Label: p.Label, Capacity: p.Capacity, Price: price})
	}
	for _, p := range c.SheetPacks {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("sheet pack %q: %w", p.Label, err)
		}
		out.SheetPacks = append(out.SheetPacks, model.SinglePack{Label: p.Label, Capacity: p.Capacity, Price: price})
	}
	for key, raw := range c.UnitPrices {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("unit price %q: %w", key, err)
		}
		out.UnitPrices[key] = price
	}
	for key, raw := range c.Fees {
		fee, err := decimal.NewFromString(raw)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("delivery fee %q: %w", key, err)
		}
		out.DeliveryFee[key] = fee
	}
	return out, nil
}

// catalogToDocument converts a domain catalog into document form.
func catalogToDocument(c model.Catalog) CatalogConfig {
	doc := CatalogConfig{
		UnitPrices: make(map[string]string, len(c.UnitPrices)),
		Fees:       make(map[string]string, len(c.DeliveryFee)),
	}
	for _, p := range c.MixedPacks {
		doc.MixedPacks = append(doc.MixedPacks, mixedPackDocument{
			Label: p.Label, Capacity: p.Capacity, ShirtLimit: p.ShirtLimit, Price: p.Price.String(),
		})
	}
	for _, p := range c.ShirtPacks {
		doc.ShirtPacks = append(doc.ShirtPacks, packDocument{Label: p.Label, Capacity: p.Capacity, Price: p.Price.String()})
	}
	for _, p := range c.SheetPacks {
		doc.SheetPacks = append(doc.SheetPacks, packDocument{Label: p.Label, Capacity: p.Capacity, Price: p.Price.String()})
	}
	for key, price := range c.UnitPrices {
		doc.UnitPrices[key] = price.String()
	}
	for key, fee := range c.DeliveryFee {
		doc.Fees[key] = fee.String()
	}
	return doc
}

// CatalogRepository provides persistence for catalog configurations.
type CatalogRepository struct {
	collection *mongo.Collection
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{collection: db.Catalogs}
}

// GetActive returns the active catalog configuration, or nil when none exists.
func (r *CatalogRepository) GetActive(ctx context.Context) (*CatalogConfig, error) {
	var config CatalogConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create deactivates any active configuration and inserts the given catalog
// as the new active one.
func (r *CatalogRepository) Create(ctx context.Context, catalog model.Catalog, createdBy string) (*CatalogConfig, error) {
	previous, err := r.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	doc := catalogToDocument(catalog)
	doc.ID = primitive.NewObjectID()
	doc.Active = true
	doc.Version = 1
	if previous != nil {
		doc.Version = previous.Version + 1
	}
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt
	doc.CreatedBy = createdBy

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns catalog configurations, newest first.
func (r *CatalogRepository) List(ctx context.Context, limit int) ([]CatalogConfig, error) {
	if limit <= 0 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var configs []CatalogConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}
