// Package chflow provides context-aware helpers for channel receives and
// timed waits, so blocking points in long-running loops honor cancellation.
package chflow

import (
	"context"
	"time"
)

// Receive waits for a value from ch or for ctx to be done.
// The boolean is false when ctx ended first or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Sleep pauses for d unless ctx is done first. It reports whether the full
// duration elapsed.
func Sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	_, ok := Receive(ctx, timer.C)
	return ok
}
