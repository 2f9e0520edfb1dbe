package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/laundry-service/internal/domain/model"
)

func TestQuoteCache_SetGet(t *testing.T) {
	c := newQuoteCache(100, time.Minute)
	defer c.Stop()

	quote := model.Quote{TotalCost: 9.0}
	c.Set("camisa=12;|lisboa", quote)

	got, ok := c.Get("camisa=12;|lisboa")
	assert.True(t, ok)
	assert.Equal(t, quote, got)

	_, ok = c.Get("camisa=12;|montijo")
	assert.False(t, ok)
}

func TestQuoteCache_Expiry(t *testing.T) {
	c := newQuoteCache(100, 20*time.Millisecond)
	defer c.Stop()

	c.Set("key", model.Quote{TotalCost: 1.0})

	_, ok := c.Get("key")
	assert.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	_, ok = c.Get("key")
	assert.False(t, ok)
}

func TestQuoteCache_Invalidate(t *testing.T) {
	c := newQuoteCache(100, time.Minute)
	defer c.Stop()

	c.Set("a", model.Quote{TotalCost: 1.0})
	c.Set("b", model.Quote{TotalCost: 2.0})

	c.Invalidate("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)
}

func TestQuoteCache_Clear(t *testing.T) {
	c := newQuoteCache(100, time.Minute)
	defer c.Stop()

	for i := 0; i < 50; i++ {
		c.Set(fmt.Sprintf("key-%d", i), model.Quote{TotalCost: float64(i)})
	}

	c.Clear()

	for i := 0; i < 50; i++ {
		_, ok := c.Get(fmt.Sprintf("key-%d", i))
		assert.False(t, ok)
	}
	assert.Equal(t, 0, c.Metrics().Size)
}

func TestQuoteCache_EvictionBound(t *testing.T) {
	c := newQuoteCache(cacheShards, time.Minute) // one entry per shard
	defer c.Stop()

	for i := 0; i < 200; i++ {
		c.Set(fmt.Sprintf("key-%d", i), model.Quote{TotalCost: float64(i)})
	}

	m := c.Metrics()
	assert.LessOrEqual(t, m.Size, m.Capacity)
	assert.Greater(t, m.Evictions, int64(0))
}

func TestQuoteCache_ConcurrentAccess(t *testing.T) {
	c := newQuoteCache(1000, time.Minute)
	defer c.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d-%d", n, j)
				c.Set(key, model.Quote{TotalCost: float64(j)})
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	m := c.Metrics()
	assert.GreaterOrEqual(t, m.Hits, int64(0))
}
