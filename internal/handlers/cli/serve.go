package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/paywatch/internal/paywatch"
	"github.com/gabapcia/paywatch/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// serveCommand returns the command running the HTTP API together with the
// watch engine.
//
//	paywatch serve --listen :3000
//
// It runs until SIGINT, SIGTERM or ctx cancellation, then shuts the server
// down and cancels every running watch.
func serveCommand(ws paywatch.Service, srv Server, defaults Defaults) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Starts the HTTP API and the watch engine.",
		Usage:       "Serves watch requests over HTTP. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "listen",
				Usage: "Address the HTTP server listens on",
				Value: defaults.ListenAddr,
			},
			&cli.DurationFlag{
				Name:  "shutdown-timeout",
				Usage: "Maximum time to wait for in-flight requests on shutdown",
				Value: defaults.ShutdownTimeout,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := ws.Start(ctx); err != nil {
				return err
			}
			defer ws.Close()

			listenErr := make(chan error, 1)
			go func() {
				listenErr <- srv.Listen(c.String("listen"))
			}()

			logger.Info(ctx, "paywatch serving", "http.listen", c.String("listen"))

			select {
			case err := <-listenErr:
				return err
			case <-quit:
			case <-ctx.Done():
			}

			logger.Info(ctx, "shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.Duration("shutdown-timeout"))
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		},
	}
}
