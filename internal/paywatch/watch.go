package paywatch

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// satoshiExponent converts BTC into satoshis when used with decimal.Shift.
const satoshiExponent = 8

// Status is the state of a watch. The declaration order is meaningful:
// lower values are "more final" than higher ones.
type Status int

const (
	// Success means the required amount reached the required confirmation depth.
	Success Status = iota
	// PartialPayment means some, but not all, of the required amount was seen.
	PartialPayment
	// Expired means the deadline passed before Success.
	Expired
	// Waiting is the initial status: nothing seen yet, or seen but not confirmed.
	Waiting
)

var statusNames = [...]string{
	Success:        "Success",
	PartialPayment: "PartialPayment",
	Expired:        "Expired",
	Waiting:        "Waiting",
}

func (s Status) String() string {
	if s < Success || s > Waiting {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// IsTerminal reports whether no further transition can happen.
func (s Status) IsTerminal() bool {
	return s == Success || s == Expired
}

// MarshalText encodes the status as its name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name, see ParseStatus.
func (s *Status) UnmarshalText(text []byte) error {
	*s = ParseStatus(string(text))
	return nil
}

// ParseStatus returns the status with the given name. Unknown names map to
// Waiting.
func ParseStatus(name string) Status {
	for i, n := range statusNames {
		if n == name {
			return Status(i)
		}
	}
	return Waiting
}

// WatchRequest describes one payment to wait for. It is immutable once accepted.
type WatchRequest struct {
	// Address is the Bitcoin address expected to receive funds.
	Address string `validate:"required"`

	// RequiredAmount is the amount, in BTC, that must arrive.
	RequiredAmount decimal.Decimal `validate:"btc_amount"`

	// RequiredConfirmations is the minimum confirmation depth for funds to count.
	RequiredConfirmations int64 `validate:"gte=0"`

	// ExpiresAt is the deadline. It is compared at second precision.
	ExpiresAt time.Time `validate:"required"`
}

// Snapshot is the point-in-time view of a watch sent to the notifier.
//
// Amounts are in satoshis. Amount stays null until the address was scanned
// at least once, Confirmations until the watch succeeds.
type Snapshot struct {
	Expiry                int64           `json:"expiry"`
	Status                Status          `json:"status"`
	Address               string          `json:"address"`
	RequiredAmount        btcutil.Amount  `json:"required_amount"`
	Amount                *btcutil.Amount `json:"amount"`
	RequiredConfirmations int64           `json:"required_confirmations_num"`
	Confirmations         *int64          `json:"confirmations_num"`
}

// watch is the mutable state of one running watch. It is owned by a single
// loop goroutine and never shared.
type watch struct {
	id      uuid.UUID
	request WatchRequest
	status  Status

	observedAmount        *decimal.Decimal
	observedConfirmations *int64

	notifier Notifier
}

func newWatch(req WatchRequest, notifier Notifier) *watch {
	return &watch{
		id:       uuid.Must(uuid.NewV7()),
		request:  req,
		status:   Waiting,
		notifier: notifier,
	}
}

// expiry returns the deadline as epoch seconds.
func (w *watch) expiry() int64 {
	return w.request.ExpiresAt.Unix()
}

func (w *watch) snapshot() Snapshot {
	snap := Snapshot{
		Expiry:                w.expiry(),
		Status:                w.status,
		Address:               w.request.Address,
		RequiredAmount:        toSatoshis(w.request.RequiredAmount),
		RequiredConfirmations: w.request.RequiredConfirmations,
	}

	if w.observedAmount != nil {
		amount := toSatoshis(*w.observedAmount)
		snap.Amount = &amount
	}

	if w.observedConfirmations != nil {
		confirmations := *w.observedConfirmations
		snap.Confirmations = &confirmations
	}

	return snap
}

// toSatoshis converts a BTC amount to satoshis, truncating sub-satoshi digits.
func toSatoshis(btc decimal.Decimal) btcutil.Amount {
	return btcutil.Amount(btc.Shift(satoshiExponent).IntPart())
}
