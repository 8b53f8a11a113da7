package bitcoind

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/paywatch/internal/pkg/logger"
	"github.com/gabapcia/paywatch/internal/pkg/resilience/retry"
)

// LoadWallet loads the named wallet into the node.
func (c *client) LoadWallet(ctx context.Context, name string) error {
	_, err := c.conn.Fetch(ctx, "loadwallet", name)
	return err
}

// UnloadWallet unloads the named wallet from the node.
func (c *client) UnloadWallet(ctx context.Context, name string) error {
	_, err := c.conn.Fetch(ctx, "unloadwallet", name)
	return err
}

// ReloadWallet unloads then loads the named wallet so the process starts from
// a freshly loaded wallet. The unload error is ignored since the wallet may
// simply not be loaded; the load is retried with r while the node warms up.
func (c *client) ReloadWallet(ctx context.Context, name string, r retry.Retry) error {
	if err := c.UnloadWallet(ctx, name); err != nil {
		logger.Debug(ctx, "wallet was not unloaded", "wallet.name", name, "error", err)
	}

	return r.Execute(ctx, func() error {
		return c.LoadWallet(ctx, name)
	})
}

// NewAddress asks the loaded wallet for a fresh receiving address.
func (c *client) NewAddress(ctx context.Context) (string, error) {
	data, err := c.conn.Fetch(ctx, "getnewaddress")
	if err != nil {
		return "", err
	}

	var address string
	return address, json.Unmarshal(data, &address)
}
