// Package cache defines the caching contract used by the quote services.
package cache

import "github.com/guttosm/laundry-service/internal/domain/model"

// Cache defines the interface for quote cache operations. Keys are canonical
// order-plus-location strings.
type Cache interface {
	Get(key string) (model.Quote, bool)
	Set(key string, value model.Quote)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// WithMetrics extends Cache with metrics reporting.
type WithMetrics interface {
	Cache
	Metrics() Metrics
}
