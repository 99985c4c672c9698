package core

import (
	"math"
	"sync"
	"time"
)

// NoExpiration is the Expiration value of entries that never go stale.
//
// It is the largest representable timestamp, which keeps the validity
// check a single strict comparison for expiring and non-expiring entries
// alike. The value survives JSON serialization, so snapshots containing
// permanent entries round-trip across process boundaries.
const NoExpiration int64 = math.MaxInt64

// Entry is a single memorized result: the value the wrapped function
// returned for a key, and the absolute point in time after which the
// entry is stale, in milliseconds since the Unix epoch.
type Entry[V any] struct {
	Value      V     `json:"value"`
	Expiration int64 `json:"expiration"`
}

// Snapshot is the exported/importable representation of the cache: a
// mapping from key to Entry. It is exactly the shape Memory.Import
// accepts, so a snapshot taken from one wrapper can seed another wrapper
// around a compatible function, including across processes if serialized.
type Snapshot[V any] map[string]Entry[V]

// Stat describes the cache contents at a point in time.
type Stat struct {
	Entries int      // number of stored entries, stale ones included
	Log     []string // insertion log, oldest first; may repeat keys
}

// Memory holds the cached results of one memoized function.
//
// It pairs the key → Entry map with an insertion log that drives
// oldest-first eviction when a size bound is configured. The log records
// every store, including re-stores of a key that is already present, and
// is never reconciled against the map: eviction pops exactly one key from
// the front per overflowing insertion and deletes that key, even when the
// popped occurrence belongs to a key that was re-stored or already
// removed. A popped duplicate therefore makes the delete a no-op and the
// map can sit above the bound until later insertions drain the log.
//
// Expiration is lazy. Stale entries are detected at lookup time and
// overwritten by the next store; no background sweep runs.
type Memory[V any] struct {
	mu      sync.Mutex
	data    map[string]Entry[V]
	order   []string // keys in store order, front is oldest
	ttl     time.Duration
	maxSize int
	clock   Clock
}

func newMemory[V any](ttl time.Duration, maxSize int, clock Clock) *Memory[V] {
	if clock == nil {
		clock = realClock{}
	}
	return &Memory[V]{
		data:    make(map[string]Entry[V]),
		ttl:     ttl,
		maxSize: maxSize,
		clock:   clock,
	}
}

// get returns the value stored under key while its entry is still valid.
// An entry is valid while its expiration lies strictly in the future.
func (m *Memory[V]) get(key string) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.data[key]
	if !ok || e.Expiration <= m.clock.Now().UnixMilli() {
		var zero V
		return zero, false
	}
	return e.Value, true
}

// store records value under key, stamps it with the configured TTL and
// appends the key to the insertion log. If the insertion pushes the map
// over the size bound, the front of the log is popped and that key is
// deleted. Returns the evicted key, if any.
func (m *Memory[V]) store(key string, value V) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	exp := NoExpiration
	if m.ttl > 0 {
		exp = m.clock.Now().UnixMilli() + m.ttl.Milliseconds()
	}
	m.data[key] = Entry[V]{Value: value, Expiration: exp}
	// Appended on every store, re-stores included.
	m.order = append(m.order, key)

	if m.maxSize > 0 && len(m.data) > m.maxSize && len(m.order) > 0 {
		oldest := m.order[0]
		m.order = m.order[1:]
		if _, present := m.data[oldest]; present {
			delete(m.data, oldest)
			return oldest, true
		}
		// The popped occurrence was a duplicate of a key already
		// removed; nothing leaves the map this time.
	}
	return "", false
}

// Import replaces the stored entries wholesale with the given snapshot.
//
// The snapshot is adopted as-is: expiration timestamps are trusted, no
// shape validation is performed and the map is not copied, so the caller
// must hand over ownership. The insertion log is left untouched, which
// means size-bound eviction after an import does not reflect the imported
// entries' true store order.
func (m *Memory[V]) Import(snapshot Snapshot[V]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if snapshot == nil {
		snapshot = make(Snapshot[V])
	}
	m.data = snapshot
}

// Export returns a copy of the live mapping, in the same shape Import
// accepts. The copy is shallow: entry values are shared with the cache.
func (m *Memory[V]) Export() Snapshot[V] {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(Snapshot[V], len(m.data))
	for k, e := range m.data {
		out[k] = e
	}
	return out
}

// Clear drops every entry and resets the insertion log. Idempotent.
func (m *Memory[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make(map[string]Entry[V])
	m.order = nil
}

// Len reports the number of stored entries, stale ones included.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

// Stat returns a snapshot of the entry count and the insertion log.
func (m *Memory[V]) Stat() Stat {
	m.mu.Lock()
	defer m.mu.Unlock()

	log := make([]string, len(m.order))
	copy(log, m.order)
	return Stat{Entries: len(m.data), Log: log}
}
