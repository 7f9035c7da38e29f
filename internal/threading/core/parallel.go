package core

import (
	"context"
	"runtime"
	"sync"
)

// ParallelMap applies fn to every item on its own goroutine chunk and
// returns the results in item order.
func ParallelMap[T any, R any](items []T, fn func(T) R) []R {
	return ParallelMapWithContext(context.Background(), items, fn)
}

// ParallelMapWithContext is ParallelMap with cancellation. Items not reached
// before ctx is done keep the zero value of R.
func ParallelMapWithContext[T any, R any](ctx context.Context, items []T, fn func(T) R) []R {
	if len(items) == 0 {
		return nil
	}

	numWorkers := min(runtime.NumCPU(), len(items))
	chunkSize := max(1, len(items)/numWorkers)

	// each goroutine writes its own index range
	results := make([]R, len(items))
	var wg sync.WaitGroup

	for i := 0; i < len(items); i += chunkSize {
		start := i
		end := min(i+chunkSize, len(items))

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for j := start; j < end; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					results[j] = fn(items[j])
				}
			}
		}(start, end)
	}

	wg.Wait()
	return results
}
