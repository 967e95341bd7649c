// Package cache is the time-boxed memoization layer for rendered feed
// pages. Writers never invalidate it; entries go stale for at most
// their TTL unless cleared explicitly.
package cache

import (
	"strings"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// Pages is the process-wide feed page cache.
var Pages = New()

type entry struct {
	value   []byte
	expires int64 // unix nanoseconds
}

type Cache struct {
	items cmap.ConcurrentMap[string, entry]
}

func New() *Cache {
	return &Cache{items: cmap.New[entry]()}
}

// Get returns the cached value if present and not expired. Expired
// entries are dropped lazily on access.
func (c *Cache) Get(key string) ([]byte, bool) {
	e, ok := c.items.Get(key)
	if !ok {
		return nil, false
	}
	if time.Now().UnixNano() >= e.expires {
		c.items.Remove(key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for ttl. Concurrent writers racing on a
// miss both computed the same result; last one wins.
func (c *Cache) Set(key string, value []byte, ttl time.Duration) {
	c.items.Set(key, entry{value: value, expires: time.Now().Add(ttl).UnixNano()})
}

func (c *Cache) Clear() {
	c.items.Clear()
}

// ClearPrefix removes every key starting with prefix, e.g. all pages
// of one feed.
func (c *Cache) ClearPrefix(prefix string) {
	for _, key := range c.items.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.items.Remove(key)
		}
	}
}

func (c *Cache) Count() int {
	return c.items.Count()
}
