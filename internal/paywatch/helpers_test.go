package paywatch

import (
	"sync"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/gabapcia/paywatch/internal/pkg/logger"
	"github.com/shopspring/decimal"
)

const testAddress = "bcrt1qw508d6qejxtdg4y5r3zarvary0c5xw7kygt080"

var testNow = time.Unix(1_750_000_000, 0)

func init() {
	_ = logger.Init("error")
}

func btc(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sats(v int64) *btcutil.Amount {
	a := btcutil.Amount(v)
	return &a
}

func int64Ptr(v int64) *int64 {
	return &v
}

func testRequest() WatchRequest {
	return WatchRequest{
		Address:               testAddress,
		RequiredAmount:        btc("1"),
		RequiredConfirmations: 2,
		ExpiresAt:             testNow.Add(10 * time.Minute),
	}
}

// testClock is a settable clock shared between a test and the loop.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(now time.Time) *testClock {
	return &testClock{now: now}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func newTestService(t *testing.T, ledger Ledger, notifier Notifier, opts ...Option) *service {
	t.Helper()

	defaults := []Option{
		WithPollInterval(time.Millisecond),
		WithClock(newTestClock(testNow).Now),
	}

	return New(NewLedgerHandle(ledger), notifier, append(defaults, opts...)...)
}
