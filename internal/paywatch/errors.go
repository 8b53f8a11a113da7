package paywatch

import "errors"

var (
	// ErrLedgerQuery wraps a failed unspent output scan. It ends the watch
	// without a notification.
	ErrLedgerQuery = errors.New("ledger query failed")

	// ErrDelivery wraps a failed notification. It ends the watch; delivery is
	// never retried.
	ErrDelivery = errors.New("notification delivery failed")

	// ErrAlreadyWatched is returned by a WatchGuard when the address is
	// already being watched.
	ErrAlreadyWatched = errors.New("address already watched")

	// ErrInvalidAmount is returned when the required amount is not positive.
	ErrInvalidAmount = errors.New("required amount must be positive")

	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrServiceNotStarted is returned by StartWatch before Start or after Close.
	ErrServiceNotStarted = errors.New("service not started")
)

// Loop control signals. They never leave the package.
var (
	errNotReachedYet = errors.New("payment not reached yet")
	errExpired       = errors.New("watch expired")
	errCompleted     = errors.New("payment completed")
)
