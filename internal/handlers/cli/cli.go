package cli

import (
	"context"
	"os"
	"time"

	"github.com/gabapcia/paywatch/internal/paywatch"

	"github.com/urfave/cli/v3"
)

// Server is the HTTP front end started by the serve command.
type Server interface {
	// Listen serves on addr and blocks until the server stops.
	Listen(addr string) error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx is done.
	Shutdown(ctx context.Context) error
}

// Defaults holds the flag defaults taken from the environment configuration.
type Defaults struct {
	ListenAddr      string
	ShutdownTimeout time.Duration
}

// Run builds the paywatch CLI and executes it with os.Args.
//
// Commands:
//
//   - `serve`: runs the HTTP API and the watch engine until interrupted.
//   - `watch`: runs a single watch in the foreground.
func Run(ctx context.Context, ws paywatch.Service, srv Server, defaults Defaults) error {
	return newApp(ws, srv, defaults).Run(ctx, os.Args)
}

func newApp(ws paywatch.Service, srv Server, defaults Defaults) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "paywatch",
		Description:           "Watches Bitcoin addresses for expected payments and reports the outcome to a webhook.",
		Usage:                 "paywatch [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(ws, srv, defaults),
			watchCommand(ws),
		},
	}
}
