package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	portssvc "github.com/SscSPs/paluwagan_app/internal/core/ports/services"
	"github.com/SscSPs/paluwagan_app/internal/middleware"
)

// InterestScheduler runs the interest sweep on a fixed interval inside the server process.
// Ticks that arrive while a sweep is still running are dropped, so sweeps never overlap.
type InterestScheduler struct {
	svc      portssvc.InterestSvc
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewInterestScheduler creates a scheduler. A non-positive interval makes Start a no-op.
func NewInterestScheduler(svc portssvc.InterestSvc, interval time.Duration, logger *slog.Logger) *InterestScheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InterestScheduler{
		svc:      svc,
		interval: interval,
		logger:   logger.With(slog.String("job", "interest_sweep")),
	}
}

// Start launches the background loop. Calling Start twice has no effect.
func (s *InterestScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.interval <= 0 {
		s.logger.Info("Interest scheduler disabled")
		return
	}
	if s.cancel != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(middleware.WithLogger(ctx, s.logger))
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.loop(loopCtx, s.done)
	s.logger.Info("Interest scheduler started", slog.Duration("interval", s.interval))
}

func (s *InterestScheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep and logs its outcome.
func (s *InterestScheduler) RunOnce(ctx context.Context) {
	result, err := s.svc.ApplyMonthlyInterest(ctx)
	if err != nil {
		s.logger.Error("Interest sweep failed", slog.String("error", err.Error()))
		return
	}
	if !result.Success() {
		s.logger.Warn("Interest sweep finished with failures", slog.Int("failed", len(result.Failures)))
	}
}

// Stop cancels the loop and waits for an in-flight sweep to finish, or for ctx to expire.
func (s *InterestScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		s.logger.Info("Interest scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
