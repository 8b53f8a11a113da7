// Package paywatch watches Bitcoin addresses for expected payments.
//
// Each accepted WatchRequest runs in its own polling loop. On every tick the
// loop scans the address's unspent outputs, compares the observed value with
// the required amount and, once enough value is present, checks that it
// reached the required confirmation depth. The Notifier is called once when
// a partial payment is first seen and once with the final Success or Expired
// snapshot, after which the loop stops.
package paywatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/paywatch/internal/pkg/logger"
	"github.com/gabapcia/paywatch/internal/pkg/validator"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultPollInterval is the wait between two ticks of a watch.
const DefaultPollInterval = 60 * time.Second

// claimGracePolls is how many poll intervals a claim outlives the watch
// deadline, covering the final tick and its notification.
const claimGracePolls = 2

// Service runs payment watches.
type Service interface {
	// Start opens the service lifecycle. Watches started with StartWatch run
	// under ctx until Close is called.
	//
	// Returns ErrServiceAlreadyStarted if the service is already running.
	Start(ctx context.Context) error

	// StartWatch validates req, claims its address and starts its polling loop
	// in the background. It returns as soon as the loop is running; the
	// outcome is only observable through the Notifier.
	//
	// ctx bounds the acceptance only, the loop is detached from it.
	// Returns ErrServiceNotStarted, a validation error, ErrInvalidAmount or
	// ErrAlreadyWatched when the request is not accepted.
	StartWatch(ctx context.Context, req WatchRequest) error

	// Watch runs the polling loop for req in the calling goroutine and
	// returns when it ends. A nil error means the final notification was
	// delivered; otherwise the error wraps ErrLedgerQuery, ErrDelivery or
	// the context error.
	Watch(ctx context.Context, req WatchRequest) error

	// Close cancels every running loop and waits for them to return.
	// Canceled loops send no notification.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc
	rootCtx   context.Context
	wg        sync.WaitGroup

	ledger   *LedgerHandle
	notifier Notifier
	guard    WatchGuard

	pollInterval time.Duration
	clock        func() time.Time
	metrics      *metrics
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	s.rootCtx = ctx
	s.closeFunc = func() {
		cancel()
		s.wg.Wait()
	}
	s.isStarted = true
	return nil
}

func (s *service) StartWatch(ctx context.Context, req WatchRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isStarted {
		return ErrServiceNotStarted
	}

	w, err := s.accept(ctx, req)
	if err != nil {
		return err
	}

	s.startExecute(s.rootCtx, w)
	return nil
}

func (s *service) Watch(ctx context.Context, req WatchRequest) error {
	w, err := s.accept(ctx, req)
	if err != nil {
		return err
	}

	return s.execute(ctx, w)
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.rootCtx = nil
	s.isStarted = false
}

// accept validates req and claims its address.
func (s *service) accept(ctx context.Context, req WatchRequest) (*watch, error) {
	if !req.RequiredAmount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if err := s.guard.ClaimWatch(ctx, req.Address, s.claimTTL(req)); err != nil {
		return nil, err
	}

	return newWatch(req, s.notifier), nil
}

// claimTTL keeps the claim alive until the watch can no longer be running.
func (s *service) claimTTL(req WatchRequest) time.Duration {
	grace := claimGracePolls * s.pollInterval

	remaining := req.ExpiresAt.Sub(s.clock())
	if remaining < 0 {
		return grace
	}

	return remaining + grace
}

// execute runs w to completion, then releases its claim and records the
// outcome.
func (s *service) execute(ctx context.Context, w *watch) error {
	ctx = logger.Derive(ctx,
		"watch.id", w.id.String(),
		"watch.address", w.request.Address,
	)

	s.metrics.watchesStarted.Inc()
	s.metrics.watchesActive.Inc()
	defer s.metrics.watchesActive.Dec()

	logger.Info(ctx, "watch started",
		"watch.amount.required", w.request.RequiredAmount.String(),
		"watch.confirmations.required", w.request.RequiredConfirmations,
		"watch.expiry", w.expiry(),
	)

	err := s.run(ctx, w)

	if releaseErr := s.guard.ReleaseWatch(context.WithoutCancel(ctx), w.request.Address); releaseErr != nil {
		logger.Warn(ctx, "error releasing watch claim", "error", releaseErr)
	}

	outcome := watchOutcome(w, err)
	s.metrics.watchesFinished.WithLabelValues(outcome).Inc()

	switch outcome {
	case outcomeSuccess, outcomeExpired:
		logger.Info(ctx, "watch finished", "watch.status", w.status.String())
	case outcomeCanceled:
		logger.Info(ctx, "watch canceled", "watch.status", w.status.String())
	default:
		logger.Error(ctx, "watch failed", "watch.status", w.status.String(), "error", err)
	}

	return err
}

// startExecute launches execute in a tracked goroutine.
func (s *service) startExecute(ctx context.Context, w *watch) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		_ = s.execute(ctx, w)
	}()
}

func watchOutcome(w *watch, err error) string {
	switch {
	case err == nil && w.status == Success:
		return outcomeSuccess
	case err == nil:
		return outcomeExpired
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeCanceled
	case errors.Is(err, ErrDelivery):
		return outcomeDeliveryError
	default:
		return outcomeLedgerError
	}
}

type config struct {
	pollInterval time.Duration
	guard        WatchGuard
	registerer   prometheus.Registerer
	clock        func() time.Time
}

// Option configures the service.
type Option func(*config)

// WithPollInterval sets the wait between two ticks of a watch.
// Default: DefaultPollInterval.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithWatchGuard sets the guard used to claim addresses.
// Default: a guard that accepts every claim.
func WithWatchGuard(g WatchGuard) Option {
	return func(c *config) {
		c.guard = g
	}
}

// WithMetricsRegisterer sets where the service registers its collectors.
// Default: a private registry.
func WithMetricsRegisterer(r prometheus.Registerer) Option {
	return func(c *config) {
		c.registerer = r
	}
}

// WithClock overrides the wall clock used for expiry checks.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// New creates a Service that queries the ledger through ledger and reports
// to notifier. Call Start before StartWatch.
func New(ledger *LedgerHandle, notifier Notifier, opts ...Option) *service {
	cfg := config{
		pollInterval: DefaultPollInterval,
		guard:        nopWatchGuard{},
		registerer:   prometheus.NewRegistry(),
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		ledger:       ledger,
		notifier:     notifier,
		guard:        cfg.guard,
		pollInterval: cfg.pollInterval,
		clock:        cfg.clock,
		metrics:      newMetrics(cfg.registerer),
	}
}
