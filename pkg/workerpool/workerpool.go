// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Process fans items out over workerCount goroutines, invoking process for
// each. The first error cancels the remaining work and is returned.
func Process[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error) error {
	if workerCount < 1 {
		workerCount = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T)
	errs := make(chan error, workerCount)

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if ctx.Err() != nil {
					return
				}
				if err := process(ctx, item); err != nil {
					select {
					case errs <- err:
					default:
					}
					cancel()
					return
				}
			}
		}()
	}

	for _, item := range items {
		stop := false
		select {
		case <-ctx.Done():
			stop = true
		case tasks <- item:
		}
		if stop {
			break
		}
	}
	close(tasks)
	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return err
	}
	return context.Cause(ctx)
}
