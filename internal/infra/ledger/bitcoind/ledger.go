package bitcoind

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/paywatch/internal/paywatch"
	"github.com/shopspring/decimal"
)

// ErrScanAborted is returned when scantxoutset reports an unsuccessful scan.
var ErrScanAborted = errors.New("utxo set scan did not complete")

type (
	// UnspentResponse is one entry of the scantxoutset "unspents" list.
	UnspentResponse struct {
		TxID         string          `json:"txid"`
		Vout         uint32          `json:"vout"`
		ScriptPubKey string          `json:"scriptPubKey"`
		Desc         string          `json:"desc"`
		Amount       decimal.Decimal `json:"amount"`
		Coinbase     bool            `json:"coinbase"`
		Height       int64           `json:"height"`
	}

	// ScanTxOutSetResponse is the result of scantxoutset "start".
	ScanTxOutSetResponse struct {
		Success     bool              `json:"success"`
		TxOuts      int64             `json:"txouts"`
		Height      int64             `json:"height"`
		BestBlock   string            `json:"bestblock"`
		Unspents    []UnspentResponse `json:"unspents"`
		TotalAmount decimal.Decimal   `json:"total_amount"`
	}

	// TransactionResponse is the subset of gettransaction used by watches.
	TransactionResponse struct {
		TxID          string          `json:"txid"`
		Amount        decimal.Decimal `json:"amount"`
		Confirmations int64           `json:"confirmations"`
		BlockHash     string          `json:"blockhash"`
		Time          int64           `json:"time"`
	}
)

func (u UnspentResponse) toUnspentOutput() paywatch.UnspentOutput {
	return paywatch.UnspentOutput{
		TxID:   u.TxID,
		Vout:   u.Vout,
		Amount: u.Amount,
		Height: u.Height,
	}
}

func (r ScanTxOutSetResponse) toScanResult() paywatch.ScanResult {
	unspents := make([]paywatch.UnspentOutput, len(r.Unspents))
	for i, u := range r.Unspents {
		unspents[i] = u.toUnspentOutput()
	}

	return paywatch.ScanResult{
		TotalAmount: r.TotalAmount,
		Unspents:    unspents,
	}
}

func (t TransactionResponse) toTransaction() paywatch.Transaction {
	return paywatch.Transaction{
		TxID:          t.TxID,
		Amount:        t.Amount,
		Confirmations: t.Confirmations,
	}
}

// addressDescriptor builds the output descriptor matching every output paying to address.
func addressDescriptor(address string) string {
	return fmt.Sprintf("addr(%s)", address)
}

// ScanUnspentOutputs implements paywatch.Ledger using scantxoutset. The scan
// covers the whole UTXO set, so it also sees outputs to addresses the node's
// wallet does not own.
func (c *client) ScanUnspentOutputs(ctx context.Context, address string) (paywatch.ScanResult, error) {
	data, err := c.conn.Fetch(ctx, "scantxoutset", "start", []string{addressDescriptor(address)})
	if err != nil {
		return paywatch.ScanResult{}, err
	}

	var res ScanTxOutSetResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return paywatch.ScanResult{}, err
	}

	if !res.Success {
		return paywatch.ScanResult{}, ErrScanAborted
	}

	return res.toScanResult(), nil
}

// GetTransaction implements paywatch.Ledger using the wallet's gettransaction.
func (c *client) GetTransaction(ctx context.Context, txID string) (paywatch.Transaction, error) {
	data, err := c.conn.Fetch(ctx, "gettransaction", txID)
	if err != nil {
		return paywatch.Transaction{}, err
	}

	var res TransactionResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return paywatch.Transaction{}, err
	}

	return res.toTransaction(), nil
}
