// Package memofn memoizes arbitrary functions under caller-chosen keys.
//
// # Overview
//
// memofn wraps any func(K) (V, error) and returns a cached variant plus a
// control surface over the cached results. Lookup is by an explicit string
// key supplied at each call; the argument is forwarded to the wrapped
// function only on a miss and is never hashed into the key.
//
// ## Features
//
//   - Keyed memoization: repeated calls with the same key return the stored
//     result without re-running the function.
//   - Expiration: entries optionally expire a fixed TTL after storage,
//     checked lazily at lookup time. Without a TTL, entries never expire.
//   - Bounded size: with a size bound, an insertion that exceeds the bound
//     evicts the oldest-stored entry.
//   - Snapshot control: the cache contents can be exported, imported into
//     another wrapper, or cleared at any time.
//   - Optional coalescing: concurrent in-flight calls for one key can be
//     collapsed into a single execution.
//   - Extensibility: optional hooks for instrumentation and custom logic.
//
// ## Usage Example
//
//	// An expensive function
//	func double(x int) (int, error) { return x * 2, nil }
//
//	// Wrap with caching
//	invoke, memory := memofn.NewMemoizedFunction(double, &memofn.Config{TTL: time.Second}, nil)
//	v, err := invoke("a", 2) // runs double, stores 4 under "a"
//	v, err = invoke("a", 7)  // returns 4 from the cache; double not called
//
//	// Move the cache between wrappers
//	invoke2, memory2 := memofn.NewMemoizedFunction(double, nil, nil)
//	memory2.Import(memory.Export())
//
// ## Customization
//
//   - Use the Config struct to set TTL, size bound and coalescing.
//   - Use the Hooks struct to add custom logic (e.g. logging, metrics).
//
// See package documentation and tests for more details.
package memofn

import (
	"github.com/osmike/memofn/internal/core"
	"github.com/osmike/memofn/internal/lib/hooks"
)

// Func is a function that can be memoized. K is the argument type
// forwarded on a cache miss, V is the result type.
type Func[K any, V any] = core.Func[K, V]

// MemoizedFunc is the cache-aware variant of a Func: the same call with
// a leading caller-chosen cache key.
type MemoizedFunc[K any, V any] = core.MemoizedFunc[K, V]

// Config defines cache configuration options such as TTL, size bound and
// in-flight coalescing.
type Config = core.Config

// Clock supplies the current time for expiration checks; inject a fake
// in tests to step time without sleeping.
type Clock = core.Clock

// Entry is one memorized result with its absolute expiration time in
// milliseconds since the Unix epoch.
type Entry[V any] = core.Entry[V]

// Snapshot is the wire format of the cache contents, accepted by
// Memory.Import and produced by Memory.Export.
type Snapshot[V any] = core.Snapshot[V]

// Memory is the control surface over one wrapper's cached results.
type Memory[V any] = core.Memory[V]

// Stat describes the cache contents at a point in time.
type Stat = core.Stat

// Hooks provides optional hooks for cache events (e.g. on hit, miss,
// store, eviction).
type Hooks = hooks.Hooks

// NoExpiration is the Entry expiration value of entries that never go
// stale.
const NoExpiration = core.NoExpiration

// NewMemoizedFunction wraps a function with a keyed result cache.
//
//   - fn: the function to memoize. Must be of type func(K) (V, error).
//   - opts: optional cache configuration (TTL, size bound, coalescing).
//     Pass nil for defaults: entries never expire and the cache is
//     unbounded.
//   - h: optional hooks for cache events. Pass nil if not needed.
//
// Returns the memoized function together with its Memory. The memoized
// function takes the cache key first, then the argument to forward on a
// miss; the Memory exposes Import, Export and Clear over the cached
// state.
//
// Example:
//
//	invoke, memory := memofn.NewMemoizedFunction(fetchUser, nil, nil)
//	u, err := invoke("user:42", 42)
//
// See package documentation for details.
func NewMemoizedFunction[K any, V any](fn Func[K, V], opts *Config, h *Hooks) (MemoizedFunc[K, V], *Memory[V]) {
	return core.NewMemoizedFunction(fn, opts, h)
}
