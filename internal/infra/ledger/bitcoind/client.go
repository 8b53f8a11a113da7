// Package bitcoind implements paywatch.Ledger for Bitcoin Core nodes through
// their JSON-RPC API, and exposes the wallet calls needed at startup and for
// address generation.
package bitcoind

import (
	"github.com/gabapcia/paywatch/internal/paywatch"
	"github.com/gabapcia/paywatch/internal/pkg/transport/jsonrpc"
)

// client talks to a single bitcoind node.
type client struct {
	conn jsonrpc.Client
}

var _ paywatch.Ledger = (*client)(nil)

// NewClient returns a client that sends every call through conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
