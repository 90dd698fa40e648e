// SPDX-License-Identifier: MIT
package zone

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type (
	// Cache memoizes the lookups of another Resolver.
	//
	// Offsets are cached per name & UTC hour, the granularity of DST transitions.
	Cache struct {
		next  Resolver
		cache *gocache.Cache
	}

	// entry records both successful & failed lookups.
	entry struct {
		minutes int
		ok      bool
	}
)

const (
	// DefTTL is the default lifetime of a cached lookup.
	DefTTL = 30 * time.Minute

	// DefCleanupInterval is the default interval for purging expired lookups.
	DefCleanupInterval = time.Hour
)

var defResolver Resolver = NewCache(Chain{DefAbbreviations(), Locations{}}, DefTTL, DefCleanupInterval)

// Default obtains the package's Resolver: cached abbreviations followed by IANA locations.
func Default() Resolver { return defResolver }

// NewCache creates a Cache in front of next.
func NewCache(next Resolver, ttl, cleanupInterval time.Duration) *Cache {
	return &Cache{
		next:  next,
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// Offset is the Resolver implementation for Cache.
func (c *Cache) Offset(name string, at time.Time) (minutes int, ok bool) {
	key := cacheKey(name, at)
	if val, found := c.cache.Get(key); found {
		e := val.(entry)
		return e.minutes, e.ok
	}

	if c.next != nil {
		minutes, ok = c.next.Offset(name, at)
	}
	c.cache.SetDefault(key, entry{minutes: minutes, ok: ok})

	return
}

// Len obtains the number of cached lookups, expired entries included until purged.
func (c *Cache) Len() int { return c.cache.ItemCount() }

// Flush drops all cached lookups.
func (c *Cache) Flush() { c.cache.Flush() }

func cacheKey(name string, at time.Time) string {
	return name + "@" + strconv.FormatInt(at.Unix()/3600, 10)
}
