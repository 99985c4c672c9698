package test

import (
	"sync"
	"testing"
	"time"

	"github.com/osmike/memofn"
)

func TestResultsExpireAfterTTL(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	fn := func(x int) (int, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return x + 1, nil
	}

	invoke, _ := memofn.NewMemoizedFunction(fn, &memofn.Config{
		TTL: 50 * time.Millisecond,
	}, nil)

	// First call: should invoke the underlying function
	if v, _ := invoke("k", 7); v != 8 {
		t.Fatal("unexpected value")
	}
	// Second call: should return cached value (not expired)
	if v, _ := invoke("k", 7); v != 8 {
		t.Fatal("unexpected value")
	}

	// Underlying function should be called only once before expiry
	mu.Lock()
	if calls != 1 {
		t.Errorf("calls before expiry = %d; want 1", calls)
	}
	mu.Unlock()

	// Wait for TTL to expire
	time.Sleep(60 * time.Millisecond)

	// After expiry, should invoke the underlying function again
	if v, _ := invoke("k", 7); v != 8 {
		t.Fatal("unexpected value after expiry")
	}
	mu.Lock()
	if calls != 2 {
		t.Errorf("calls after expiry = %d; want 2", calls)
	}
	mu.Unlock()
}

func TestEntriesWithoutTTLNeverExpire(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	fn := func(x int) (int, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return x + 1, nil
	}

	clock := newFakeClock()
	invoke, _ := memofn.NewMemoizedFunction(fn, &memofn.Config{
		Clock: clock, // no TTL configured
	}, nil)

	if v, _ := invoke("k", 7); v != 8 {
		t.Fatal("unexpected value")
	}

	// Even far in the future the entry is still valid
	clock.Advance(1000 * time.Hour)
	if v, _ := invoke("k", 7); v != 8 {
		t.Fatal("unexpected value after advancing the clock")
	}

	mu.Lock()
	if calls != 1 {
		t.Errorf("underlying called %d times; want 1", calls)
	}
	mu.Unlock()
}

func TestExpiryWithSteppedClock(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	fn := func(x int) (int, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return x * 10, nil
	}

	clock := newFakeClock()
	invoke, _ := memofn.NewMemoizedFunction(fn, &memofn.Config{
		TTL:   time.Second,
		Clock: clock,
	}, nil)

	invoke("k", 3)

	// Just before the deadline the entry is still a hit
	clock.Advance(999 * time.Millisecond)
	invoke("k", 3)

	mu.Lock()
	if calls != 1 {
		t.Fatalf("calls before deadline = %d; want 1", calls)
	}
	mu.Unlock()

	// At the deadline the entry is no longer strictly in the future
	clock.Advance(time.Millisecond)
	invoke("k", 3)

	mu.Lock()
	if calls != 2 {
		t.Errorf("calls at deadline = %d; want 2", calls)
	}
	mu.Unlock()
}
