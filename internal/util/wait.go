package util

import (
	"context"
	"time"
)

var sleep = time.Sleep

// WaitFor sleeps for the given duration unless the context is cancelled
// first, in which case the context error is returned.
func WaitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sleep(d)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
