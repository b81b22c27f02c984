package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/paluwagan_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/paluwagan_app/internal/core/ports/services"
	"github.com/SscSPs/paluwagan_app/internal/platform/clock"
	"github.com/SscSPs/paluwagan_app/internal/platform/metrics"
)

// DefaultInterestWorkers bounds how many loans a sweep updates at once.
const DefaultInterestWorkers = 8

// interestService runs the monthly interest accrual sweep.
type interestService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
	workers int
}

// InterestOption configures an interest service.
type InterestOption func(*interestService)

// WithInterestWorkers sets the sweep's parallelism. Values below 1 are ignored.
func WithInterestWorkers(n int) InterestOption {
	return func(s *interestService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewInterestService creates a new InterestService.
func NewInterestService(txnRepo portsrepo.TransactionRepositoryFacade, clk clock.Clock, opts ...InterestOption) portssvc.InterestSvc {
	s := &interestService{
		BaseService: newBaseService(clk),
		txnRepo:     txnRepo,
		workers:     DefaultInterestWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.InterestSvc = (*interestService)(nil)

type accrualOutcome int

const (
	accrualSkipped accrualOutcome = iota
	accrualUpdated
	accrualFailed
)

type accrualResult struct {
	outcome accrualOutcome
	err     error
}

// ApplyMonthlyInterest implements portssvc.InterestSvc.
// Only a failure to list loans is returned as an error; per-loan failures land in the result.
func (s *interestService) ApplyMonthlyInterest(ctx context.Context) (domain.BatchResult, error) {
	timer := time.Now()
	logger := s.GetLogger(ctx)

	loanType, approved := domain.Loan, domain.StatusApproved
	loans, err := s.txnRepo.FindTransactions(ctx, domain.TransactionFilter{Type: &loanType, Status: &approved})
	if err != nil {
		logger.Error("Failed to load active loans for interest sweep", slog.String("error", err.Error()))
		metrics.InterestSweepsTotal.WithLabelValues("error").Inc()
		return domain.BatchResult{}, err
	}
	sort.Slice(loans, func(i, j int) bool { return loans[i].TransactionID < loans[j].TransactionID })

	now := s.Now()
	results := make([]accrualResult, len(loans))

	g := new(errgroup.Group)
	g.SetLimit(s.workers)
	for i, loan := range loans {
		if ctx.Err() != nil {
			results[i] = accrualResult{outcome: accrualFailed, err: ctx.Err()}
			continue
		}
		g.Go(func() error {
			results[i] = s.accrue(ctx, loan, now)
			return nil
		})
	}
	_ = g.Wait()

	batch := domain.BatchResult{Processed: len(loans), Failures: []domain.RecordFailure{}}
	for i, r := range results {
		switch r.outcome {
		case accrualUpdated:
			batch.Updated++
		case accrualSkipped:
			batch.Skipped++
		case accrualFailed:
			batch.Failures = append(batch.Failures, domain.RecordFailure{
				TransactionID: loans[i].TransactionID,
				Error:         r.err.Error(),
			})
		}
	}

	metrics.RecordSweep(batch.Updated, batch.Skipped, len(batch.Failures))
	metrics.InterestSweepDuration.Observe(time.Since(timer).Seconds())
	logger.Info("Interest sweep finished",
		slog.Int("processed", batch.Processed),
		slog.Int("updated", batch.Updated),
		slog.Int("skipped", batch.Skipped),
		slog.Int("failed", len(batch.Failures)))
	return batch, nil
}

func (s *interestService) accrue(ctx context.Context, loan domain.Transaction, now time.Time) accrualResult {
	if err := ctx.Err(); err != nil {
		return accrualResult{outcome: accrualFailed, err: err}
	}
	interest, due := loan.InterestDue(now)
	if !due {
		return accrualResult{outcome: accrualSkipped}
	}

	applied, err := s.txnRepo.ApplyInterest(ctx, loan.TransactionID, *loan.LastInterestAppliedAt, interest, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to apply interest", slog.String("transaction_id", loan.TransactionID))
		return accrualResult{outcome: accrualFailed, err: err}
	}
	if !applied {
		s.LogDebug(ctx, "Loan changed since it was read; interest not applied", slog.String("transaction_id", loan.TransactionID))
		return accrualResult{outcome: accrualSkipped}
	}
	s.LogDebug(ctx, "Interest applied",
		slog.String("transaction_id", loan.TransactionID),
		slog.String("interest", interest.String()))
	return accrualResult{outcome: accrualUpdated}
}
