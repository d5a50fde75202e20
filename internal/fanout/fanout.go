// Package fanout runs a function across a slice of items with a bounded
// number of concurrent goroutines, preserving input order in the results.
// It joins on the full set: no result is visible until every item finished.
package fanout

import (
	"context"
	"sync"
)

// Run executes fn for each item using at most width concurrent goroutines
// and returns the results in input order. Width values below 1 are clamped
// to 1. fn is always invoked for every item; cancellation handling is fn's
// responsibility, so a canceled context still yields one result per item.
//
// Run blocks until all goroutines complete. An empty items slice returns an
// empty non-nil slice immediately.
func Run[T, R any](ctx context.Context, width int, items []T, fn func(context.Context, T) R) []R {
	if len(items) == 0 {
		return []R{}
	}
	if width < 1 {
		width = 1
	}

	results := make([]R, len(items))
	sem := make(chan struct{}, width)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			results[idx] = fn(ctx, it)
		}(i, item)
	}

	wg.Wait()
	return results
}
