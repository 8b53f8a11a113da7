// Package http exposes the paywatch engine over HTTP using fiber.
package http

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gabapcia/paywatch/internal/paywatch"
)

// AddressGenerator hands out fresh receiving addresses from the node wallet.
type AddressGenerator interface {
	// NewAddress returns an address never handed out before.
	NewAddress(ctx context.Context) (string, error)
}

type server struct {
	app *fiber.App

	watcher   paywatch.Service
	addresses AddressGenerator
	network   *chaincfg.Params
	clock     func() time.Time
}

// Listen serves HTTP on addr until Shutdown is called.
func (s *server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx is done.
func (s *server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *server) registerRoutes(gatherer prometheus.Gatherer) {
	s.app.Get("/", s.hello)
	s.app.Get("/healthz", s.healthz)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	s.app.Post("/wait_on", s.waitOn)
	s.app.Post("/create_and_wait_on", s.createAndWaitOn)
	s.app.Post("/test_webhook", s.testWebhook)
}

type config struct {
	clock    func() time.Time
	gatherer prometheus.Gatherer
}

// Option configures the server.
type Option func(*config)

// WithClock overrides the clock used to compute watch deadlines.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithGatherer sets the registry exposed on /metrics.
// Default: prometheus.DefaultGatherer.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(c *config) {
		c.gatherer = g
	}
}

// NewServer builds the HTTP API. Addresses submitted to /wait_on must belong
// to network.
func NewServer(watcher paywatch.Service, addresses AddressGenerator, network *chaincfg.Params, opts ...Option) *server {
	cfg := config{
		clock:    time.Now,
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           60 * time.Second,
	})
	app.Use(recover.New())

	s := &server{
		app:       app,
		watcher:   watcher,
		addresses: addresses,
		network:   network,
		clock:     cfg.clock,
	}
	s.registerRoutes(cfg.gatherer)

	return s
}
