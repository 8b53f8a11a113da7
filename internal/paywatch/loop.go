package paywatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/paywatch/internal/pkg/logger"
	"github.com/gabapcia/paywatch/internal/pkg/x/chflow"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/gabapcia/paywatch/internal/paywatch"

// tick runs one polling step of w.
//
// It returns errNotReachedYet to keep polling, errExpired or errCompleted
// when w reached a terminal status (the final notification is sent by run),
// and any other error when the watch must stop.
func (s *service) tick(ctx context.Context, w *watch) error {
	if s.clock().Unix() > w.expiry() {
		w.status = Expired
		return errExpired
	}

	var (
		scan          ScanResult
		confirmed     decimal.Decimal
		confirmations int64
	)

	err := s.ledger.Do(func(l Ledger) error {
		start := time.Now()
		result, err := l.ScanUnspentOutputs(ctx, w.request.Address)
		s.metrics.observeScan(start)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLedgerQuery, err)
		}
		scan = result

		if scan.TotalAmount.LessThan(w.request.RequiredAmount) {
			return nil
		}

		confirmed, confirmations = aggregateConfirmed(ctx, l, scan.Unspents, w.request.RequiredConfirmations)
		return nil
	})
	if err != nil {
		return err
	}

	observed := scan.TotalAmount
	w.observedAmount = &observed

	if observed.LessThan(w.request.RequiredAmount) {
		if observed.IsPositive() && w.status != PartialPayment {
			w.status = PartialPayment
			if err := s.notify(ctx, w); err != nil {
				return err
			}
		}
		return errNotReachedYet
	}

	if confirmed.LessThan(w.request.RequiredAmount) {
		logger.Debug(ctx, "payment seen but not confirmed yet",
			"watch.amount.confirmed", confirmed.String(),
			"watch.amount.observed", observed.String(),
		)
		return errNotReachedYet
	}

	w.status = Success
	w.observedAmount = &confirmed
	w.observedConfirmations = &confirmations
	return errCompleted
}

// tracedTick wraps tick in a span.
func (s *service) tracedTick(ctx context.Context, w *watch) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "paywatch.tick")
	defer span.End()

	err := s.tick(ctx, w)

	span.SetAttributes(
		attribute.String("watch.id", w.id.String()),
		attribute.String("watch.status", w.status.String()),
	)
	if err != nil && !isControlSignal(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}

// run polls until w is terminal, a failure occurs or ctx is done.
// It returns nil once the final notification was delivered.
func (s *service) run(ctx context.Context, w *watch) error {
	for {
		err := s.tracedTick(ctx, w)
		switch {
		case errors.Is(err, errNotReachedYet):
		case errors.Is(err, errExpired), errors.Is(err, errCompleted):
			return s.notify(ctx, w)
		default:
			return err
		}

		if !chflow.Sleep(ctx, s.pollInterval) {
			return ctx.Err()
		}
	}
}

func (s *service) notify(ctx context.Context, w *watch) error {
	snap := w.snapshot()

	err := w.notifier.Notify(ctx, snap)
	s.metrics.observeNotification(snap.Status, err)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	logger.Info(ctx, "notification delivered", "watch.status", snap.Status.String())
	return nil
}

func isControlSignal(err error) bool {
	return errors.Is(err, errNotReachedYet) || errors.Is(err, errExpired) || errors.Is(err, errCompleted)
}
