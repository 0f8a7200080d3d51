package remapper

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheKind uint8

const (
	kindClass cacheKind = iota + 1
	kindField
	kindMethod
)

// cacheKey identifies a query in the source namespace.
type cacheKey struct {
	kind   cacheKind
	class  string
	member string
	desc   string
}

// resultCache stores successful resolutions. Implementations are safe for
// concurrent use.
type resultCache interface {
	Get(key cacheKey) (any, bool)
	Add(key cacheKey, value any)
	Len() int
}

// mapCache never evicts.
type mapCache struct {
	m sync.Map
	n atomic.Int64
}

func (c *mapCache) Get(key cacheKey) (any, bool) {
	return c.m.Load(key)
}

func (c *mapCache) Add(key cacheKey, value any) {
	if _, loaded := c.m.LoadOrStore(key, value); !loaded {
		c.n.Add(1)
	}
}

func (c *mapCache) Len() int {
	return int(c.n.Load())
}

// lruCache keeps at most size entries.
type lruCache struct {
	cache *lru.Cache[cacheKey, any]
}

func newLRUCache(size int) (*lruCache, error) {
	lcache, err := lru.New[cacheKey, any](size)
	if err != nil {
		return nil, err
	}

	return &lruCache{cache: lcache}, nil
}

func (c *lruCache) Get(key cacheKey) (any, bool) {
	return c.cache.Get(key)
}

func (c *lruCache) Add(key cacheKey, value any) {
	c.cache.Add(key, value)
}

func (c *lruCache) Len() int {
	return c.cache.Len()
}

func newCache(size int) (resultCache, error) {
	if size > 0 {
		return newLRUCache(size)
	}

	return &mapCache{}, nil
}
