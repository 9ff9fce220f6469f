package account

import (
	"strconv"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewAccountAssignsIncreasingIDs(t *testing.T) {
	a := mustAccount(t, "Alice", 0)
	b := mustAccount(t, "Bob", 0)

	if a.ID() >= b.ID() {
		t.Errorf("ids not strictly increasing: %d then %d", a.ID(), b.ID())
	}
}

func TestConcurrentNewAccountUniqueIDs(t *testing.T) {
	const workers = 16
	const perWorker = 100

	ids := make(chan uint64, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				a, err := NewAccount("w"+strconv.Itoa(n)+"-"+strconv.Itoa(j), decimal.Zero)
				if err != nil {
					t.Errorf("NewAccount failed: %v", err)
					return
				}
				ids <- a.ID()
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate account id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != workers*perWorker {
		t.Errorf("got %d unique ids, want %d", len(seen), workers*perWorker)
	}
}
