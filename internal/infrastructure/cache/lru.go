// Package cache keeps hot preference records in memory in front of the
// database.
package cache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bnema/themeroot/internal/application/port"
)

// LRU is a fixed-capacity least-recently-used cache, safe for concurrent use.
type LRU[K comparable, V any] struct {
	inner   *lru.Cache[K, V]
	evicted atomic.Uint64
}

var _ port.Cache[string, int] = (*LRU[string, int])(nil)

// NewLRU holds at most capacity entries. Capacities below 1 are raised to 1.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	// New only fails on a non-positive size.
	inner, _ := lru.New[K, V](max(capacity, 1))
	return &LRU[K, V]{inner: inner}
}

func (c *LRU[K, V]) Get(key K) (V, bool) { return c.inner.Get(key) }

// Set stores value and marks key most recently used.
func (c *LRU[K, V]) Set(key K, value V) {
	if c.inner.Add(key, value) {
		c.evicted.Add(1)
	}
}

func (c *LRU[K, V]) AddIfAbsent(key K, value V) (V, bool) {
	prev, found, evicted := c.inner.PeekOrAdd(key, value)
	if evicted {
		c.evicted.Add(1)
	}
	return prev, found
}

// Remove drops key. Removal does not count as an eviction.
func (c *LRU[K, V]) Remove(key K) { c.inner.Remove(key) }

func (c *LRU[K, V]) Len() int { return c.inner.Len() }

// Evicted counts entries pushed out by capacity.
func (c *LRU[K, V]) Evicted() uint64 { return c.evicted.Load() }
