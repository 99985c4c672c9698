// Package core implements keyed memoization of arbitrary functions with
// lazy expiration, oldest-first eviction and a snapshot control surface.
//
// This package is not intended for direct use. Use the memofn package
// for a public API.
//
// # Type Parameters
//
//   - K: the type of the argument forwarded to the wrapped function.
//   - V: the type of the function result.
//
// Unlike argument-hashing memoizers, the cache key is an explicit string
// chosen by the caller; the argument plays no part in lookup and is only
// forwarded on a miss.
package core

import (
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/osmike/memofn/internal/lib/hooks"
)

// Func is the shape of a function that can be memoized.
//
// K is the argument type forwarded on a cache miss, V the result type.
type Func[K any, V any] func(arg K) (V, error)

// MemoizedFunc is the cache-aware variant of a Func. The key identifies
// the cacheable result and is chosen by the caller; it is never derived
// from the argument.
type MemoizedFunc[K any, V any] func(key string, arg K) (V, error)

// Config controls the cache behavior.
//
//   - TTL: lifetime of each stored entry, counted from the store. Zero
//     means entries never expire.
//   - MaxCacheSize: upper bound on stored entries. Zero means unbounded.
//     When an insertion pushes the cache over the bound, the
//     oldest-stored key is evicted.
//   - Coalesce: collapse concurrent in-flight calls for the same key
//     into a single execution. Off by default: concurrent misses each
//     run the function and the last writer wins.
//   - Clock: time source for expiration checks. Nil means the wall
//     clock.
type Config struct {
	TTL          time.Duration
	MaxCacheSize int
	Coalesce     bool
	Clock        Clock
}

// memo binds a wrapped function to the Memory holding its results.
type memo[K any, V any] struct {
	fn    Func[K, V]
	mem   *Memory[V]
	group singleflight.Group // used only when cfg.Coalesce is set
	cfg   *Config
	hooks *hooks.Hooks
}

// NewMemoizedFunction wraps fn with a keyed result cache.
//
//   - fn: the function to memoize. Must be of type func(K) (V, error).
//   - opts: optional cache configuration. Pass nil for defaults: no
//     expiration, no size bound, no coalescing.
//   - h: optional lifecycle hooks. Pass nil if not needed.
//
// Returns the memoized function and the Memory that owns its cached
// results. The Memory is the control surface: import, export and clear
// act on it directly and take effect on the very next invocation.
func NewMemoizedFunction[K any, V any](fn Func[K, V], opts *Config, h *hooks.Hooks) (MemoizedFunc[K, V], *Memory[V]) {
	if opts == nil {
		opts = &Config{}
	}
	if h == nil {
		h = &hooks.Hooks{}
	}

	m := &memo[K, V]{
		fn:    fn,
		mem:   newMemory[V](opts.TTL, opts.MaxCacheSize, opts.Clock),
		cfg:   opts,
		hooks: h,
	}
	return m.call, m.mem
}

// call performs one cache-aware invocation.
//
// A valid entry under key is returned as-is without running fn. On a
// miss fn runs with the forwarded argument; a successful result is
// stored under key, a failure propagates unchanged and leaves the cache
// untouched for that key.
func (m *memo[K, V]) call(key string, arg K) (V, error) {
	if v, ok := m.mem.get(key); ok {
		m.hooks.Run("on_hit", m.hooks.OnHit, key)
		return v, nil
	}
	m.hooks.Run("on_miss", m.hooks.OnMiss, key)

	if m.cfg.Coalesce {
		v, err, _ := m.group.Do(key, func() (interface{}, error) {
			return m.execute(key, arg)
		})
		if err != nil {
			var zero V
			return zero, err
		}
		// Comma-ok: when V is an interface type a legitimate nil result
		// arrives as a nil interface{}, which a hard assertion rejects.
		val, _ := v.(V)
		return val, nil
	}
	return m.execute(key, arg)
}

// execute runs the wrapped function outside any lock and stores a
// successful result.
func (m *memo[K, V]) execute(key string, arg K) (V, error) {
	v, err := m.fn(arg)
	if err != nil {
		var zero V
		return zero, err
	}

	if evicted, ok := m.mem.store(key, v); ok {
		m.hooks.Run("on_evict", m.hooks.OnEvict, evicted)
	}
	m.hooks.Run("on_store", m.hooks.OnStore, key)
	return v, nil
}
