package test

import (
	"sync"
	"testing"

	"github.com/osmike/memofn"
)

// By default concurrent in-flight calls for one key are not collapsed:
// each miss runs the function and the last completion wins the stored
// value.
func TestConcurrentMissesEachRunTheFunction(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	entered := make(chan struct{}, 2)
	release := make(chan struct{})

	fn := func(x int) (int, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		entered <- struct{}{}
		<-release
		return x * 3, nil
	}

	invoke, _ := memofn.NewMemoizedFunction(fn, nil, nil)

	var wg sync.WaitGroup
	results := make([]int, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := invoke("shared", 4)
			if err != nil {
				t.Errorf("goroutine %d error: %v", i, err)
			}
			results[i] = r
		}(i)
	}

	// Hold both invocations inside the function to prove neither waited
	// on the other
	<-entered
	<-entered
	close(release)
	wg.Wait()

	for i, r := range results {
		if r != 12 {
			t.Errorf("goroutine %d got %d; want 12", i, r)
		}
	}

	mu.Lock()
	if calls != 2 {
		t.Errorf("underlying called %d times; want 2", calls)
	}
	mu.Unlock()

	// Once settled, the stored value serves subsequent calls
	if v, _ := invoke("shared", 4); v != 12 {
		t.Errorf("follow-up call got %d; want 12", v)
	}
	mu.Lock()
	if calls != 2 {
		t.Errorf("underlying called %d times after settle; want still 2", calls)
	}
	mu.Unlock()
}
