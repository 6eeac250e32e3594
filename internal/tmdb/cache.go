package tmdb

import (
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultCacheSize = 1024
	defaultCacheTTL  = time.Hour
)

// cache holds decoded detail payloads. Discover pages reshuffle while a run
// is in progress, so the same show can show up twice in one catalog.
type cache struct {
	inner *lru.LRU[string, *TVDetails]
}

func newCache(size int, ttl time.Duration) *cache {
	if size <= 0 {
		size = defaultCacheSize
	}
	return &cache{inner: lru.NewLRU[string, *TVDetails](size, nil, ttl)}
}

func detailKey(showID int64, appendTo []string) string {
	return fmt.Sprintf("%d|%s", showID, strings.Join(appendTo, ","))
}

func (c *cache) get(key string) (*TVDetails, bool) {
	return c.inner.Get(key)
}

func (c *cache) set(key string, details *TVDetails) {
	c.inner.Add(key, details)
}

func (c *cache) len() int {
	return c.inner.Len()
}
