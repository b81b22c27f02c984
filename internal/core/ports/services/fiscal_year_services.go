package services

import (
	"context"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FiscalYearSvc manages starting balances and archival
type FiscalYearSvc interface {
	// GetStartingBalance returns the year's record, creating it with zero if absent.
	GetStartingBalance(ctx context.Context, year int) (*domain.FiscalYearRecord, error)

	// SetStartingBalance upserts the year's opening balance.
	SetStartingBalance(ctx context.Context, year int, amount decimal.Decimal, actorID string) (*domain.FiscalYearRecord, error)

	// ArchiveFiscalYear flags all of a year's transactions as archived.
	ArchiveFiscalYear(ctx context.Context, year int, actorID string) (domain.ArchiveResult, error)
}

// ReportingSvc builds read-only views over the ledger
type ReportingSvc interface {
	// RunningBalance replays a fiscal year. descending re-sorts entries newest first after annotation.
	RunningBalance(ctx context.Context, year int, descending bool) (*domain.RunningBalanceReport, error)

	// OwnerSummary totals savings and outstanding loans for an owner.
	OwnerSummary(ctx context.Context, ownerID string, memberID *string, fiscalYear *int) (domain.OwnerSummary, error)
}
