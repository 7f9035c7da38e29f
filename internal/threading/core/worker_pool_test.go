package core

import (
	"context"
	"testing"
)

func TestParallelMapKeepsOrder(t *testing.T) {
	items := make([]int, 1000)
	for i := range items {
		items[i] = i
	}
	results := ParallelMap(items, func(v int) int { return v * v })

	if len(results) != len(items) {
		t.Fatalf("Expected %d results, got %d", len(items), len(results))
	}
	for i, r := range results {
		if r != i*i {
			t.Fatalf("Result %d: expected %d, got %d", i, i*i, r)
		}
	}
	if ParallelMap([]int(nil), func(v int) int { return v }) != nil {
		t.Errorf("Expected nil for no items")
	}
}

func TestParallelMapCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := NewSafeCounter()
	results := ParallelMapWithContext(ctx, []int{1, 2, 3}, func(v int) int {
		calls.Increment()
		return v
	})
	if calls.Get() != 0 {
		t.Errorf("Expected no calls after cancellation, got %d", calls.Get())
	}
	for _, r := range results {
		if r != 0 {
			t.Errorf("Expected zero results after cancellation, got %v", results)
			break
		}
	}
}

func TestWorkerPoolParallelFor(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Start()
	defer pool.Stop()

	if pool.GetNumWorkers() != 4 {
		t.Errorf("Expected 4 workers, got %d", pool.GetNumWorkers())
	}

	seen := make([]int, 257)
	sum := NewSafeCounter()
	pool.ParallelFor(0, len(seen), func(i int) {
		seen[i]++
		sum.Add(int64(i))
	})

	for i, n := range seen {
		if n != 1 {
			t.Fatalf("Index %d visited %d times", i, n)
		}
	}
	if sum.Get() != 256*257/2 {
		t.Errorf("Expected sum %d, got %d", 256*257/2, sum.Get())
	}

	pool.ParallelFor(5, 5, func(int) { t.Errorf("Expected no calls for an empty range") })
}

func TestWorkerPoolDefaultsToCPUCount(t *testing.T) {
	if NewWorkerPool(0).GetNumWorkers() < 1 {
		t.Errorf("Expected at least one worker")
	}
}
