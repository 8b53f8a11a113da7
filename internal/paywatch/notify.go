package paywatch

import "context"

// Notifier delivers watch snapshots to the outside world.
//
// Notify is called at most once with a PartialPayment snapshot and exactly
// once with the final Success or Expired snapshot of each watch. A returned
// error ends the watch; the snapshot is not resent.
type Notifier interface {
	Notify(ctx context.Context, snap Snapshot) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, snap Snapshot) error

// Notify calls f(ctx, snap).
func (f NotifierFunc) Notify(ctx context.Context, snap Snapshot) error {
	return f(ctx, snap)
}
