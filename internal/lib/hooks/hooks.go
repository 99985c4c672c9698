// package hooks

package hooks

import (
	"github.com/osmike/memofn/internal/lib/errs"
)

// HookFunc is called on cache lifecycle events with the cache key the
// event concerns. It may return an error to signal that something went
// wrong.
type HookFunc func(key string) error

// HookFuncError is called whenever another hook errors or panics.
// It must never panic itself.
type HookFuncError func(err error)

// Hooks holds the set of lifecycle hooks and an error-logging hook.
//
// All hooks are optional. They observe the cache; they cannot veto or
// alter an operation, and a failing or panicking hook never disturbs the
// invocation it was fired from.
type Hooks struct {
	OnHit    HookFunc      // called when a lookup returns a valid entry
	OnMiss   HookFunc      // called when a lookup finds no valid entry
	OnStore  HookFunc      // called after a result is stored
	OnEvict  HookFunc      // called with the key removed by eviction
	LogError HookFuncError // called on any hook error or panic
}

// Run executes the given hook fn with the provided key. The name tags
// the hook in error reports. If fn returns an error or panics, Run
// recovers and forwards the wrapped error to Hooks.LogError (if non-nil),
// and does not panic itself.
func (h *Hooks) Run(name string, fn HookFunc, key string) {
	if fn == nil {
		return
	}

	// catch panics in the hook
	defer func() {
		if r := recover(); r != nil {
			h.safeLogError(errs.NewError(errs.ErrHook, map[string]interface{}{
				"hook":  name,
				"key":   key,
				"panic": r,
			}))
		}
	}()

	if err := fn(key); err != nil {
		h.safeLogError(errs.NewError(errs.ErrHook, map[string]interface{}{
			"hook":  name,
			"key":   key,
			"error": err,
		}))
	}
}

// safeLogError calls the LogError hook if set, and recovers if it panics.
func (h *Hooks) safeLogError(err error) {
	if h.LogError == nil {
		return
	}
	defer func() {
		recover() // swallow any panic in LogError
	}()
	h.LogError(err)
}
