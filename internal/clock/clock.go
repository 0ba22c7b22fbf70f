// Package clock abstracts time sources so ledger components can be tested
// with fixed timestamps.
package clock

import (
	"context"
	"time"
)

// NowFunc supplies the current time. Production code passes time.Now;
// tests pass a fixed clock.
type NowFunc func() time.Time

// Sleep waits for d or returns early with the context error when ctx is
// canceled first.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
