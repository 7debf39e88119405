package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/rs/zerolog/log"
)

// Cache is a small TTL cache for aggregated chain views. Entries expire on
// the life window; there is no explicit invalidation.
type Cache struct {
	cache *bigcache.BigCache
}

// NewCache creates a cache whose entries live for ttl.
func NewCache(ttl time.Duration) (*Cache, error) {
	config := bigcache.DefaultConfig(ttl)
	config.CleanWindow = ttl
	config.Verbose = false

	cache, err := bigcache.New(context.Background(), config)
	if err != nil {
		return nil, err
	}
	return &Cache{cache: cache}, nil
}

// Get decodes a cached entry into out. It returns false on miss or decode
// failure.
func (c *Cache) Get(key string, out interface{}) bool {
	if c == nil {
		return false
	}
	data, err := c.cache.Get(key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("Dropping undecodable cache entry")
		_ = c.cache.Delete(key)
		return false
	}
	return true
}

// Set stores a value under key. Failures only cost a cache hit.
func (c *Cache) Set(key string, value interface{}) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn().Str("key", key).Err(err).Msg("Failed to encode cache entry")
		return
	}
	if err := c.cache.Set(key, data); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("Failed to store cache entry")
	}
}

// Close releases the cache resources.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.cache.Close()
}
