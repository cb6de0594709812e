// Package service contains the business logic for the storefront core.
package service

import (
	"sync"
	"time"

	"github.com/casadulce/storefront/internal/domain/model"
	"github.com/casadulce/storefront/internal/metrics"
)

// queryCache provides thread-safe LRU caching with TTL expiration for
// catalog query results, keyed by the filter's cache key.
type queryCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	items    map[string]*cacheEntry
	head     *cacheEntry
	tail     *cacheEntry
	stopCh   chan struct{}
	stopOnce sync.Once
}

// cacheEntry is a single cached query result with expiration tracking.
type cacheEntry struct {
	key       string
	value     []model.Product
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

// newQueryCache creates a cache with the given capacity and TTL. A background
// goroutine periodically evicts expired entries until Stop is called.
func newQueryCache(capacity int, ttl time.Duration) *queryCache {
	if capacity < 1 {
		capacity = 1
	}
	c := &queryCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Get returns the cached products for the key if present and unexpired.
func (c *queryCache) Get(key string) ([]model.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.removeEntry(entry)
		metrics.RecordCacheOperation("get", "expired")
		return nil, false
	}

	c.moveToFront(entry)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set stores a query result, evicting the least recently used entry when the
// cache is at capacity.
func (c *queryCache) Set(key string, value []model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	if len(c.items) >= c.capacity && c.tail != nil {
		c.removeEntry(c.tail)
		metrics.RecordCacheOperation("evict", "lru")
	}

	entry := &cacheEntry{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = entry
	c.pushFront(entry)
	metrics.RecordCacheOperation("set", "ok")
	metrics.UpdateCacheSize(len(c.items))
}

// Clear removes all entries.
func (c *queryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*cacheEntry, c.capacity)
	c.head, c.tail = nil, nil
	metrics.UpdateCacheSize(0)
}

// Len returns the current number of cached entries.
func (c *queryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stop shuts down the background cleanup goroutine.
func (c *queryCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *queryCache) cleanupLoop() {
	interval := c.ttl
	if interval <= 0 || interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.evictExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *queryCache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
			metrics.RecordCacheOperation("evict", "expired")
		}
	}
	metrics.UpdateCacheSize(len(c.items))
}

// removeEntry unlinks the entry. Caller must hold the lock.
func (c *queryCache) removeEntry(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	delete(c.items, entry.key)
}

// pushFront links the entry as most recently used. Caller must hold the lock.
func (c *queryCache) pushFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

// moveToFront marks the entry as most recently used. Caller must hold the lock.
func (c *queryCache) moveToFront(entry *cacheEntry) {
	if c.head == entry {
		return
	}
	// Unlink without touching the map, then relink at the head.
	if entry.prev != nil {
		entry.prev.next = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	}
	if c.tail == entry {
		c.tail = entry.prev
	}
	c.pushFront(entry)
}
