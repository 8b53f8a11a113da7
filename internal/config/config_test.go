package config

import (
	"os"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("CON_URL", "http://127.0.0.1:8332")
	t.Setenv("WALLET", "shop")
	t.Setenv("WEBHOOK", "http://127.0.0.1:9000/hook")
	t.Setenv("RPC_USER_PASS", "rpcuser:rpc:pass")
	t.Setenv("WAIT_TIME_SECS", "30")
	t.Setenv("PORT", "3000")
}

func TestLoad(t *testing.T) {
	t.Run("reads required values and applies defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "http://127.0.0.1:8332", cfg.NodeURL)
		assert.Equal(t, "shop", cfg.Wallet)
		assert.Equal(t, "http://127.0.0.1:9000/hook", cfg.WebhookURL)
		assert.Equal(t, 30*time.Second, cfg.PollInterval())
		assert.Equal(t, "0.0.0.0:3000", cfg.ListenAddr())
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "paywatch", cfg.ServiceName)
		assert.False(t, cfg.TelemetryEnabled)
		assert.Equal(t, 30*time.Second, cfg.RPCTimeout)
		assert.Equal(t, 10*time.Second, cfg.WebhookTimeout)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
		assert.False(t, cfg.RedisEnabled())
	})

	t.Run("fails when a required variable is missing", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("WEBHOOK", "")
		require.NoError(t, os.Unsetenv("WEBHOOK"))

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects credentials without a colon", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("RPC_USER_PASS", "rpcuser")

		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects an unknown network", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BITCOIN_NETWORK", "litecoin")

		_, err := Load()
		assert.ErrorIs(t, err, ErrUnknownNetwork)
	})

	t.Run("enables redis when an address is set", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
		t.Setenv("REDIS_DB", "2")

		cfg, err := Load()
		require.NoError(t, err)

		assert.True(t, cfg.RedisEnabled())
		assert.Equal(t, 2, cfg.RedisDB)
	})
}

func TestConfig_Credentials(t *testing.T) {
	t.Run("splits at the first colon", func(t *testing.T) {
		user, pass, err := Config{RPCUserPass: "rpcuser:rpc:pass"}.Credentials()

		require.NoError(t, err)
		assert.Equal(t, "rpcuser", user)
		assert.Equal(t, "rpc:pass", pass)
	})

	t.Run("allows an empty password", func(t *testing.T) {
		user, pass, err := Config{RPCUserPass: "rpcuser:"}.Credentials()

		require.NoError(t, err)
		assert.Equal(t, "rpcuser", user)
		assert.Empty(t, pass)
	})
}

func TestConfig_Network(t *testing.T) {
	cases := map[string]*chaincfg.Params{
		"mainnet": &chaincfg.MainNetParams,
		"MAIN":    &chaincfg.MainNetParams,
		"testnet": &chaincfg.TestNet3Params,
		"signet":  &chaincfg.SigNetParams,
		"regtest": &chaincfg.RegressionNetParams,
		"simnet":  &chaincfg.SimNetParams,
	}

	for name, expected := range cases {
		t.Run(name, func(t *testing.T) {
			params, err := Config{BitcoinNetwork: name}.Network()

			require.NoError(t, err)
			assert.Same(t, expected, params)
		})
	}
}
