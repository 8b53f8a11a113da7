package paywatch

import (
	"context"
	"time"
)

// WatchGuard prevents the same address from being watched twice at once,
// inside one process or across replicas sharing a store.
type WatchGuard interface {
	// ClaimWatch reserves address for a new watch.
	//
	// It returns ErrAlreadyWatched if another live watch holds the claim. The
	// claim expires on its own after ttl so a crashed process cannot keep an
	// address reserved forever. Any other error is a guard failure.
	ClaimWatch(ctx context.Context, address string, ttl time.Duration) error

	// ReleaseWatch drops the claim on address once its watch has ended.
	ReleaseWatch(ctx context.Context, address string) error
}

// nopWatchGuard accepts every claim, allowing duplicate watches.
type nopWatchGuard struct{}

var _ WatchGuard = nopWatchGuard{}

func (nopWatchGuard) ClaimWatch(ctx context.Context, address string, ttl time.Duration) error {
	return nil
}

func (nopWatchGuard) ReleaseWatch(ctx context.Context, address string) error {
	return nil
}
