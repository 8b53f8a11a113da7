// Package config loads the paywatch runtime configuration from environment
// variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/kelseyhightower/envconfig"
)

var (
	// ErrInvalidCredentials is returned when RPC_USER_PASS is not in user:pass form.
	ErrInvalidCredentials = errors.New("invalid rpc credentials")

	// ErrUnknownNetwork is returned when BITCOIN_NETWORK names no known network.
	ErrUnknownNetwork = errors.New("unknown bitcoin network")
)

// Config is the environment configuration of the paywatch binary.
type Config struct {
	NodeURL      string `envconfig:"CON_URL" required:"true"`
	Wallet       string `envconfig:"WALLET" required:"true"`
	WebhookURL   string `envconfig:"WEBHOOK" required:"true"`
	RPCUserPass  string `envconfig:"RPC_USER_PASS" required:"true"`
	WaitTimeSecs uint64 `envconfig:"WAIT_TIME_SECS" required:"true"`
	Port         uint16 `envconfig:"PORT" required:"true"`

	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info"`
	ServiceName      string        `envconfig:"SERVICE_NAME" default:"paywatch"`
	TelemetryEnabled bool          `envconfig:"TELEMETRY_ENABLED" default:"false"`
	BitcoinNetwork   string        `envconfig:"BITCOIN_NETWORK" default:"mainnet"`
	RPCTimeout       time.Duration `envconfig:"RPC_TIMEOUT" default:"30s"`
	WebhookTimeout   time.Duration `envconfig:"WEBHOOK_TIMEOUT" default:"10s"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	if _, _, err := cfg.Credentials(); err != nil {
		return Config{}, err
	}

	if _, err := cfg.Network(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Credentials splits RPC_USER_PASS at the first colon.
func (c Config) Credentials() (user, pass string, err error) {
	user, pass, ok := strings.Cut(c.RPCUserPass, ":")
	if !ok {
		return "", "", ErrInvalidCredentials
	}

	return user, pass, nil
}

// Network returns the chain parameters addresses are validated against.
func (c Config) Network() (*chaincfg.Params, error) {
	switch strings.ToLower(c.BitcoinNetwork) {
	case "mainnet", "main":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3", "test":
		return &chaincfg.TestNet3Params, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "simnet":
		return &chaincfg.SimNetParams, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, c.BitcoinNetwork)
	}
}

// PollInterval is the delay between two ledger queries of a watch.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.WaitTimeSecs) * time.Second
}

// ListenAddr is the HTTP listen address for PORT on every interface.
func (c Config) ListenAddr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

// RedisEnabled reports whether watch claims are shared through Redis.
func (c Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}
