package store

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedKV fronts another KV with a bounded LRU read cache. Writes go to the
// backing store first and only update the cache once they succeed. A cache
// fill holds mu so a read that started before a write cannot repopulate the
// cache with the value that write replaced.
type CachedKV struct {
	backing KV
	cache   *lru.Cache[string, string]
	mu      sync.Mutex
}

func NewCachedKV(backing KV, size int) (*CachedKV, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &CachedKV{backing: backing, cache: cache}, nil
}

func (c *CachedKV) Get(ctx context.Context, key string) (string, bool, error) {
	if v, ok := c.cache.Get(key); ok {
		return v, true, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.cache.Get(key); ok {
		return v, true, nil
	}

	v, ok, err := c.backing.Get(ctx, key)
	if err != nil || !ok {
		return v, ok, err
	}
	c.cache.Add(key, v)
	return v, true, nil
}

func (c *CachedKV) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.backing.Set(ctx, key, value); err != nil {
		c.cache.Remove(key)
		return err
	}
	c.cache.Add(key, value)
	return nil
}

func (c *CachedKV) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Remove(key)
	return c.backing.Delete(ctx, key)
}
