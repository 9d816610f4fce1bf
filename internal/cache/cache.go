package cache

import (
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Item wraps cached data with its expiry.
type Item struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Cache is a small TTL'd LRU used to front the public post list.
type Cache struct {
	lruCache *lru.Cache[string, Item]
}

func New(size int) *Cache {
	l, err := lru.New[string, Item](size)
	if err != nil {
		log.Fatalf("Failed to create LRU cache: %v", err)
	}
	return &Cache{lruCache: l}
}

// Set stores data under key for the given TTL.
func (c *Cache) Set(key string, data interface{}, ttl time.Duration) {
	c.lruCache.Add(key, Item{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	})
}

// Get returns the cached data, or nil when absent or expired.
func (c *Cache) Get(key string) interface{} {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil
	}
	return val.Data
}

// Delete drops a key.
func (c *Cache) Delete(key string) {
	c.lruCache.Remove(key)
}
