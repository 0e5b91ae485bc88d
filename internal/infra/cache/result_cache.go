// Package cache keeps recent search results in memory.
package cache

import (
	"time"

	"studyhub/config"
	"studyhub/internal/domain/entity"
	"studyhub/internal/domain/service"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studyhub_result_cache_hits_total",
		Help: "Search result cache hits.",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studyhub_result_cache_misses_total",
		Help: "Search result cache misses.",
	})
)

// ResultCache is a bounded LRU whose entries expire after a fixed TTL.
// Entries are replaced whole; stored slices are never mutated.
type ResultCache struct {
	lru *expirable.LRU[string, []entity.Resource]
}

// NewResultCache creates a cache holding at most size keys for ttl each.
func NewResultCache(size int, ttl time.Duration) *ResultCache {
	return &ResultCache{
		lru: expirable.NewLRU[string, []entity.Resource](size, nil, ttl),
	}
}

// New builds the cache from the search section for Fx.
func New(cfg *config.Config) service.ResultCache {
	return NewResultCache(cfg.Search.CacheSize, cfg.Search.CacheTTL)
}

// Get returns the cached records for key.
func (c *ResultCache) Get(key string) ([]entity.Resource, bool) {
	records, ok := c.lru.Get(key)
	if ok {
		cacheHitsTotal.Inc()

		return records, true
	}
	cacheMissesTotal.Inc()

	return nil, false
}

// Set stores a copy of records under key.
func (c *ResultCache) Set(key string, records []entity.Resource) {
	stored := make([]entity.Resource, len(records))
	copy(stored, records)
	c.lru.Add(key, stored)
}

// Len reports the number of live entries.
func (c *ResultCache) Len() int {
	return c.lru.Len()
}
