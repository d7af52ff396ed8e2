// Package memo caches results of pure functions keyed by their exact
// arguments. Entries are never evicted: the wrapped functions here run
// over small finite state spaces, so the cache stays bounded in
// practice. Wrapping a non-pure function yields stale results.
package memo

import "sync"

// Cache is a process-wide result store for one wrapped function. All
// methods are safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]V
	hits    int
	misses  int
}

func newCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V)}
}

func (c *Cache[K, V]) get(key K, compute func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries[key]; ok {
		c.hits++
		return v
	}
	c.misses++
	v := compute()
	c.entries[key] = v
	return v
}

// Hits reports how many lookups were served from the cache.
func (c *Cache[K, V]) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits
}

// Misses reports how many lookups had to compute a fresh result.
func (c *Cache[K, V]) Misses() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.misses
}

// Len reports the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Key2 is the exact-argument key of a two-argument function.
type Key2[A, B comparable] struct {
	A A
	B B
}

// Func1 wraps a pure single-argument function with a cache, returning
// the memoized function together with the cache for inspection.
func Func1[A comparable, R any](f func(A) R) (func(A) R, *Cache[A, R]) {
	c := newCache[A, R]()
	return func(a A) R {
		return c.get(a, func() R { return f(a) })
	}, c
}

// Func2 is Func1 for two-argument functions, keyed on both arguments.
func Func2[A, B comparable, R any](f func(A, B) R) (func(A, B) R, *Cache[Key2[A, B], R]) {
	c := newCache[Key2[A, B], R]()
	return func(a A, b B) R {
		return c.get(Key2[A, B]{A: a, B: b}, func() R { return f(a, b) })
	}, c
}
