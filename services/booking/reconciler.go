package booking

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CompletePastCheckout promotes every Confirmed booking whose checkout
// has passed to Completed. The predicate lives in the repository and is
// shared with the review gate's lazy promotion, so concurrent runs
// degrade to no-ops.
func (s *DefaultBookingService) CompletePastCheckout(ctx context.Context, now time.Time) (int64, error) {
	return s.Repo.CompletePastCheckout(ctx, now)
}

// StartReconciler runs the completion sweep on a fixed interval until
// the context is cancelled. Failures are logged and retried on the next
// tick; the sweep is idempotent so partial progress is safe.
func StartReconciler(ctx context.Context, svc BookingService, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	run := func() {
		sweepCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()

		updated, err := svc.CompletePastCheckout(sweepCtx, time.Now())
		if err != nil {
			logger.Error("booking reconciler sweep failed", zap.Error(err))
			return
		}
		if updated > 0 {
			logger.Info("bookings promoted to Completed", zap.Int64("count", updated))
		}
	}

	run()
	for {
		select {
		case <-ctx.Done():
			logger.Info("booking reconciler shutting down")
			return
		case <-ticker.C:
			run()
		}
	}
}
