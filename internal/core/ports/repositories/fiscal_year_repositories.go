package repositories

import (
	"context"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
)

// FiscalYearReader defines read operations for fiscal year records
type FiscalYearReader interface {
	// FindFiscalYear retrieves the record for a year. Returns apperrors.ErrNotFound if absent.
	FindFiscalYear(ctx context.Context, year int) (*domain.FiscalYearRecord, error)
}

// FiscalYearWriter defines write operations for fiscal year records
type FiscalYearWriter interface {
	// CreateFiscalYearIfAbsent inserts rec unless the year exists, and returns the stored record.
	CreateFiscalYearIfAbsent(ctx context.Context, rec domain.FiscalYearRecord) (*domain.FiscalYearRecord, error)

	// UpsertFiscalYear replaces the starting balance of a year, creating it if needed.
	UpsertFiscalYear(ctx context.Context, rec domain.FiscalYearRecord) error
}

// FiscalYearRepositoryFacade combines all fiscal year repository interfaces
type FiscalYearRepositoryFacade interface {
	FiscalYearReader
	FiscalYearWriter
}
