package paywatch

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// UnspentOutput is one unspent output paying to the scanned address.
type UnspentOutput struct {
	TxID   string
	Vout   uint32
	Amount decimal.Decimal
	Height int64
}

// ScanResult is the outcome of an unspent output scan.
type ScanResult struct {
	// TotalAmount is the sum of every unspent output, confirmed or not.
	TotalAmount decimal.Decimal
	Unspents    []UnspentOutput
}

// Transaction is the ledger's view of a single transaction.
type Transaction struct {
	TxID          string
	Amount        decimal.Decimal
	Confirmations int64
}

// Ledger abstracts the Bitcoin node queried by watches.
//
// Implementations are not required to be safe for concurrent use; watches
// reach them only through a LedgerHandle.
type Ledger interface {
	// ScanUnspentOutputs lists every unspent output currently paying to address.
	//
	// An error means the scan could not be completed and its result must not
	// be trusted.
	ScanUnspentOutputs(ctx context.Context, address string) (ScanResult, error)

	// GetTransaction returns the amount and confirmation depth of txID.
	GetTransaction(ctx context.Context, txID string) (Transaction, error)
}

// LedgerHandle serializes access to a Ledger shared by every watch.
type LedgerHandle struct {
	mu     sync.Mutex
	ledger Ledger
}

// NewLedgerHandle wraps l for shared use.
func NewLedgerHandle(l Ledger) *LedgerHandle {
	return &LedgerHandle{ledger: l}
}

// Do runs fn with exclusive access to the ledger. The lock is held until fn
// returns, so a scan and its follow-up lookups observe the same node state.
func (h *LedgerHandle) Do(fn func(Ledger) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return fn(h.ledger)
}
