package main

import (
	"context"
	"os"

	"github.com/gabapcia/paywatch/internal/config"
	"github.com/gabapcia/paywatch/internal/handlers/cli"
	httphandler "github.com/gabapcia/paywatch/internal/handlers/http"
	"github.com/gabapcia/paywatch/internal/infra/ledger/bitcoind"
	"github.com/gabapcia/paywatch/internal/infra/notifier/webhook"
	"github.com/gabapcia/paywatch/internal/infra/storage/redis"
	"github.com/gabapcia/paywatch/internal/paywatch"
	"github.com/gabapcia/paywatch/internal/pkg/logger"
	"github.com/gabapcia/paywatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/paywatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/paywatch/internal/pkg/transport/http"
	"github.com/gabapcia/paywatch/internal/pkg/transport/jsonrpc"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			panic(err)
		}
		defer func() {
			_ = shutdown(context.WithoutCancel(ctx))
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg); err != nil {
		logger.Error(ctx, "paywatch stopped", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	network, err := cfg.Network()
	if err != nil {
		return err
	}

	user, pass, err := cfg.Credentials()
	if err != nil {
		return err
	}

	rpcHTTP := transporthttp.NewClient(transporthttp.WithTimeout(cfg.RPCTimeout)).StandardClient()
	node := bitcoind.NewClient(jsonrpc.NewClient(rpcHTTP, cfg.NodeURL, jsonrpc.WithBasicAuth(user, pass)))

	if err := node.ReloadWallet(ctx, cfg.Wallet, retry.New(retry.WithAttempts(5))); err != nil {
		return err
	}
	logger.Info(ctx, "wallet loaded", "wallet.name", cfg.Wallet)

	webhookHTTP := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.WebhookTimeout),
		transporthttp.WithRetryMax(0),
	).StandardClient()
	notifier := webhook.NewNotifier(webhookHTTP, cfg.WebhookURL)

	opts := []paywatch.Option{
		paywatch.WithPollInterval(cfg.PollInterval()),
		paywatch.WithMetricsRegisterer(prometheus.DefaultRegisterer),
	}

	if cfg.RedisEnabled() {
		guard, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer guard.Close()

		opts = append(opts, paywatch.WithWatchGuard(guard))
		logger.Info(ctx, "watch claims shared through redis", "redis.addr", cfg.RedisAddr)
	}

	ws := paywatch.New(paywatch.NewLedgerHandle(node), notifier, opts...)
	srv := httphandler.NewServer(ws, node, network)

	return cli.Run(ctx, ws, srv, cli.Defaults{
		ListenAddr:      cfg.ListenAddr(),
		ShutdownTimeout: cfg.ShutdownTimeout,
	})
}
