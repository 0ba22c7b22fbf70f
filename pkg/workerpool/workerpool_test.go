package workerpool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess_AllItems(t *testing.T) {
	t.Parallel()

	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	var (
		mu   sync.Mutex
		seen = map[int]bool{}
	)
	err := Process(context.Background(), 8, items, func(_ context.Context, v int) error {
		mu.Lock()
		seen[v] = true
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, len(items))
}

func TestProcess_FirstErrorStopsWork(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	items := make([]int, 1000)
	for i := range items {
		items[i] = i
	}

	var processed atomic.Int64
	err := Process(context.Background(), 4, items, func(_ context.Context, v int) error {
		if v == 10 {
			return errBoom
		}
		processed.Add(1)
		return nil
	})

	assert.ErrorIs(t, err, errBoom)
	assert.Less(t, processed.Load(), int64(len(items)), "error should cancel remaining items")
}

func TestProcess_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Process(ctx, 2, []int{1, 2, 3}, func(context.Context, int) error {
		t.Fatal("process should not run with a cancelled context")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_ZeroWorkersClamped(t *testing.T) {
	t.Parallel()

	var processed atomic.Int64
	err := Process(context.Background(), 0, []int{1, 2, 3}, func(context.Context, int) error {
		processed.Add(1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), processed.Load())
}

func TestProcess_EmptyItems(t *testing.T) {
	t.Parallel()

	err := Process(context.Background(), 4, nil, func(context.Context, int) error {
		t.Fatal("no items to process")
		return nil
	})
	require.NoError(t, err)
}
