// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Result pairs one item's outcome with its error, if any.
type Result[R any] struct {
	Value R
	Err   error
}

// Map runs fn over items with workerCount workers and returns one result
// per item, in input order. Item failures are reported individually and
// do not stop the remaining items. Map returns the context error when
// cancelled before all items were dispatched; results for items already
// processed are still populated.
func Map[T, R any](ctx context.Context, workerCount int, items []T, fn func(context.Context, T) (R, error)) ([]Result[R], error) {
	if workerCount < 1 {
		workerCount = 1
	}

	results := make([]Result[R], len(items))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				value, err := fn(ctx, items[i])
				results[i] = Result[R]{Value: value, Err: err}
			}
		}()
	}

	var dispatchErr error
dispatch:
	for i := range items {
		if err := ctx.Err(); err != nil {
			dispatchErr = err
			break
		}
		select {
		case <-ctx.Done():
			dispatchErr = ctx.Err()
			break dispatch
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	return results, dispatchErr
}
