package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/paywatch/internal/paywatch"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

// watchCommand returns the command running one watch in the foreground.
//
//	paywatch watch --address bc1q... --amount 0.015 --confirmations 2 --expiry-in-mins 60
//
// The command returns once the final notification was sent, or with the
// error that ended the watch. Ctrl+C cancels it without notification.
func watchCommand(ws paywatch.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Watch a single address in the foreground until the payment succeeds or expires.",
		Usage:       "Runs one watch and exits when it ends.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Bitcoin address expected to receive the payment",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "amount",
				Usage:    "Required amount in BTC (e.g., 0.015)",
				Required: true,
			},
			&cli.Int64Flag{
				Name:  "confirmations",
				Usage: "Required confirmation depth",
				Value: 1,
			},
			&cli.Uint64Flag{
				Name:     "expiry-in-mins",
				Usage:    "Minutes from now until the watch expires",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			amount, err := decimal.NewFromString(c.String("amount"))
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", c.String("amount"), err)
			}

			req := paywatch.WatchRequest{
				Address:               c.String("address"),
				RequiredAmount:        amount,
				RequiredConfirmations: c.Int64("confirmations"),
				ExpiresAt:             time.Now().Add(time.Duration(c.Uint64("expiry-in-mins")) * time.Minute),
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return ws.Watch(ctx, req)
		},
	}
}
