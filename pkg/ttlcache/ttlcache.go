// Package ttlcache потокобезопасный кэш с временем жизни записей.
// Часы передаются явно, чтобы тесты управляли временем.
package ttlcache

import (
	"sync"
	"time"
)

type Clock func() time.Time

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type Cache[K comparable, V any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	now   Clock
	items map[K]entry[V]
}

func New[K comparable, V any](ttl time.Duration, now Clock) *Cache[K, V] {
	if now == nil {
		now = time.Now
	}
	return &Cache[K, V]{
		ttl:   ttl,
		now:   now,
		items: make(map[K]entry[V]),
	}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	c.items[key] = entry[V]{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
}

func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Purge удаляет просроченные записи и возвращает их количество.
func (c *Cache[K, V]) Purge() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	var purged int
	for key, e := range c.items {
		if !now.Before(e.expiresAt) {
			delete(c.items, key)
			purged++
		}
	}
	return purged
}

func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
