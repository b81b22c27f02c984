package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/paluwagan_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/paluwagan_app/internal/core/ports/services"
	"github.com/SscSPs/paluwagan_app/internal/platform/clock"
	"github.com/SscSPs/paluwagan_app/internal/platform/metrics"
)

// fiscalYearService manages starting balances and year-end archival.
type fiscalYearService struct {
	BaseService
	fyRepo  portsrepo.FiscalYearRepositoryFacade
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewFiscalYearService creates a new FiscalYearService.
func NewFiscalYearService(fyRepo portsrepo.FiscalYearRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade, clk clock.Clock) portssvc.FiscalYearSvc {
	return &fiscalYearService{
		BaseService: newBaseService(clk),
		fyRepo:      fyRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.FiscalYearSvc = (*fiscalYearService)(nil)

// GetStartingBalance implements portssvc.FiscalYearSvc
func (s *fiscalYearService) GetStartingBalance(ctx context.Context, year int) (*domain.FiscalYearRecord, error) {
	if err := domain.ValidateFiscalYear(year); err != nil {
		return nil, err
	}
	rec, err := s.fyRepo.FindFiscalYear(ctx, year)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load fiscal year", slog.Int("year", year))
		return nil, err
	}

	zero, err := domain.NewFiscalYearRecord(year, decimal.Zero, "", s.Now())
	if err != nil {
		return nil, err
	}
	rec, err = s.fyRepo.CreateFiscalYearIfAbsent(ctx, zero)
	if err != nil {
		s.LogError(ctx, err, "Failed to create fiscal year", slog.Int("year", year))
		return nil, err
	}
	s.LogInfo(ctx, "Fiscal year record created with zero starting balance", slog.Int("year", year))
	return rec, nil
}

// SetStartingBalance implements portssvc.FiscalYearSvc
func (s *fiscalYearService) SetStartingBalance(ctx context.Context, year int, amount decimal.Decimal, actorID string) (*domain.FiscalYearRecord, error) {
	rec, err := domain.NewFiscalYearRecord(year, amount, actorID, s.Now())
	if err != nil {
		return nil, err
	}
	if err := s.fyRepo.UpsertFiscalYear(ctx, rec); err != nil {
		s.LogError(ctx, err, "Failed to save starting balance", slog.Int("year", year))
		return nil, err
	}
	s.LogInfo(ctx, "Starting balance updated",
		slog.Int("year", year),
		slog.String("starting_balance", rec.StartingBalance.String()),
		slog.String("actor_id", actorID))
	return &rec, nil
}

// ArchiveFiscalYear implements portssvc.FiscalYearSvc
func (s *fiscalYearService) ArchiveFiscalYear(ctx context.Context, year int, actorID string) (domain.ArchiveResult, error) {
	if err := domain.ValidateFiscalYear(year); err != nil {
		return domain.ArchiveResult{}, err
	}
	now := s.Now()
	count, err := s.txnRepo.ArchiveFiscalYear(ctx, year, actorID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to archive fiscal year", slog.Int("year", year))
		return domain.ArchiveResult{}, err
	}

	result := domain.ArchiveResult{Year: year, Count: count, IsCurrentYear: year == now.Year()}
	metrics.ArchivedTransactionsTotal.Add(float64(count))
	logger := s.GetLogger(ctx).With(slog.Int("year", year), slog.Int64("count", count), slog.String("actor_id", actorID))
	if result.IsCurrentYear {
		logger.Warn("Archived the current fiscal year")
	} else {
		logger.Info("Fiscal year archived")
	}
	return result, nil
}
