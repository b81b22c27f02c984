package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/paluwagan_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/paluwagan_app/internal/core/ports/services"
	"github.com/SscSPs/paluwagan_app/internal/platform/clock"
)

// reportingService builds read-only views over the ledger.
type reportingService struct {
	BaseService
	txnRepo   portsrepo.TransactionRepositoryFacade
	fiscalSvc portssvc.FiscalYearSvc
}

// NewReportingService creates a new ReportingService.
func NewReportingService(txnRepo portsrepo.TransactionRepositoryFacade, fiscalSvc portssvc.FiscalYearSvc, clk clock.Clock) portssvc.ReportingSvc {
	return &reportingService{
		BaseService: newBaseService(clk),
		txnRepo:     txnRepo,
		fiscalSvc:   fiscalSvc,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// RunningBalance implements portssvc.ReportingSvc
func (s *reportingService) RunningBalance(ctx context.Context, year int, descending bool) (*domain.RunningBalanceReport, error) {
	rec, err := s.fiscalSvc.GetStartingBalance(ctx, year)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.FindTransactions(ctx, domain.TransactionFilter{FiscalYear: &year})
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for running balance", slog.Int("year", year))
		return nil, err
	}

	domain.SortChronologically(txns)
	entries, ending := domain.ReplayLedger(rec.StartingBalance, txns)
	if descending {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}

	s.LogDebug(ctx, "Running balance rebuilt", slog.Int("year", year), slog.Int("entries", len(entries)))
	return &domain.RunningBalanceReport{
		Year:            year,
		StartingBalance: rec.StartingBalance,
		EndingBalance:   ending,
		Entries:         entries,
	}, nil
}

// OwnerSummary implements portssvc.ReportingSvc
func (s *reportingService) OwnerSummary(ctx context.Context, ownerID string, memberID *string, fiscalYear *int) (domain.OwnerSummary, error) {
	if fiscalYear != nil {
		if err := domain.ValidateFiscalYear(*fiscalYear); err != nil {
			return domain.OwnerSummary{}, err
		}
	}
	owner := ownerID
	txns, err := s.txnRepo.FindTransactions(ctx, domain.TransactionFilter{
		OwnerID:    &owner,
		MemberID:   memberID,
		FiscalYear: fiscalYear,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for summary", slog.String("owner_id", ownerID))
		return domain.OwnerSummary{}, err
	}
	return domain.Summarize(ownerID, memberID, fiscalYear, txns), nil
}
