package paywatch

import (
	"context"

	"github.com/gabapcia/paywatch/internal/pkg/logger"
	"github.com/gabapcia/paywatch/internal/pkg/types"
	"github.com/shopspring/decimal"
)

// aggregateConfirmed sums the amount of the transactions behind unspents that
// have at least requiredConfirmations confirmations.
//
// Each transaction is counted once even when it funds several outputs.
// Lookups that fail are logged and skipped. The returned depth is the
// integer mean of the kept transactions' confirmations, which approximates
// the depth of the payment as a whole. With nothing kept it returns (0, 0).
func aggregateConfirmed(ctx context.Context, ledger Ledger, unspents []UnspentOutput, requiredConfirmations int64) (decimal.Decimal, int64) {
	seen := types.NewSet[string]()
	confirmed := decimal.Zero

	var confirmationsSum, keptTransactions int64

	for _, unspent := range unspents {
		if seen.Has(unspent.TxID) {
			continue
		}
		seen.Add(unspent.TxID)

		tx, err := ledger.GetTransaction(ctx, unspent.TxID)
		if err != nil {
			logger.Warn(ctx, "skipping transaction lookup failure", "tx.id", unspent.TxID, "error", err)
			continue
		}

		if tx.Confirmations < requiredConfirmations {
			continue
		}

		confirmed = confirmed.Add(tx.Amount)
		confirmationsSum += tx.Confirmations
		keptTransactions++
	}

	if keptTransactions == 0 {
		return decimal.Zero, 0
	}

	return confirmed, confirmationsSum / keptTransactions
}
