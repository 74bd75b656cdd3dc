package db

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"finance-api/src/models"
)

const categoriesKey = "categories"

// CategoryCache holds the category list for a fixed TTL. Categories have no
// write path here, so entries only expire. A nil *CategoryCache is valid and
// never hits.
type CategoryCache struct {
	cache *ristretto.Cache[string, []models.Category]
	ttl   time.Duration
}

// NewCategoryCache returns nil when ttl is not positive.
func NewCategoryCache(ttl time.Duration) (*CategoryCache, error) {
	if ttl <= 0 {
		return nil, nil
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, []models.Category]{
		NumCounters: 100, // number of keys to track frequency of
		MaxCost:     10,
		BufferItems: 64, // number of keys per Get buffer
		// Costs are entry counts, not bytes.
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &CategoryCache{cache: c, ttl: ttl}, nil
}

func (c *CategoryCache) Get() ([]models.Category, bool) {
	if c == nil {
		return nil, false
	}
	return c.cache.Get(categoriesKey)
}

func (c *CategoryCache) Set(categories []models.Category) {
	if c == nil {
		return
	}
	c.cache.SetWithTTL(categoriesKey, categories, 1, c.ttl)
	c.cache.Wait()
}

func (c *CategoryCache) Clear() {
	if c == nil {
		return
	}
	c.cache.Del(categoriesKey)
}

func (c *CategoryCache) Close() {
	if c == nil {
		return
	}
	c.cache.Close()
}
