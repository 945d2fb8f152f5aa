package ids

import (
	"sync"
	"testing"
	"time"
)

func TestNextIsStrictlyIncreasing(t *testing.T) {
	gen := NewGenerator()
	prev := gen.Next()
	for i := 0; i < 1000; i++ {
		id := gen.Next()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestNextSurvivesFrozenClock(t *testing.T) {
	frozen := time.Now()
	gen := &Generator{now: func() time.Time { return frozen }}

	first := gen.Next()
	second := gen.Next()
	if second != first+1 {
		t.Fatalf("expected consecutive ids under frozen clock, got %d then %d", first, second)
	}
}

func TestNextIsUniqueUnderConcurrency(t *testing.T) {
	gen := NewGenerator()
	const workers = 8
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[int64]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := gen.Next()
				mu.Lock()
				if _, dup := seen[id]; dup {
					mu.Unlock()
					t.Errorf("duplicate id %d", id)
					return
				}
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
}
