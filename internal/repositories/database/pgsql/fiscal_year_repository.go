package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/paluwagan_app/internal/core/ports/repositories"
	"github.com/SscSPs/paluwagan_app/internal/models"
	"github.com/SscSPs/paluwagan_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxFiscalYearRepository stores per-year starting balances.
type PgxFiscalYearRepository struct {
	BaseRepository
}

func newPgxFiscalYearRepository(pool *pgxpool.Pool) portsrepo.FiscalYearRepositoryFacade {
	return &PgxFiscalYearRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FiscalYearRepositoryFacade = (*PgxFiscalYearRepository)(nil)

// FindFiscalYear retrieves the record for a year.
func (r *PgxFiscalYearRepository) FindFiscalYear(ctx context.Context, year int) (*domain.FiscalYearRecord, error) {
	query := `SELECT year, starting_balance, updated_at, updated_by FROM fiscal_years WHERE year = $1;`
	var m models.FiscalYear
	err := r.Pool.QueryRow(ctx, query, year).Scan(&m.Year, &m.StartingBalance, &m.UpdatedAt, &m.UpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: fiscal year %d", apperrors.ErrNotFound, year)
		}
		return nil, apperrors.NewStoreError("failed to find fiscal year "+strconv.Itoa(year), err)
	}
	d := mapping.ToDomainFiscalYear(m)
	return &d, nil
}

// CreateFiscalYearIfAbsent inserts rec unless the year exists and returns whatever is stored.
func (r *PgxFiscalYearRepository) CreateFiscalYearIfAbsent(ctx context.Context, rec domain.FiscalYearRecord) (*domain.FiscalYearRecord, error) {
	m := mapping.ToModelFiscalYear(rec)
	query := `
		INSERT INTO fiscal_years (year, starting_balance, updated_at, updated_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (year) DO NOTHING;
	`
	if _, err := r.Pool.Exec(ctx, query, m.Year, m.StartingBalance, m.UpdatedAt, m.UpdatedBy); err != nil {
		return nil, apperrors.NewStoreError("failed to create fiscal year "+strconv.Itoa(m.Year), err)
	}
	return r.FindFiscalYear(ctx, m.Year)
}

// UpsertFiscalYear replaces the starting balance of a year, creating it if needed.
func (r *PgxFiscalYearRepository) UpsertFiscalYear(ctx context.Context, rec domain.FiscalYearRecord) error {
	m := mapping.ToModelFiscalYear(rec)
	query := `
		INSERT INTO fiscal_years (year, starting_balance, updated_at, updated_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (year) DO UPDATE
		SET starting_balance = EXCLUDED.starting_balance,
		    updated_at = EXCLUDED.updated_at,
		    updated_by = EXCLUDED.updated_by;
	`
	if _, err := r.Pool.Exec(ctx, query, m.Year, m.StartingBalance, m.UpdatedAt, m.UpdatedBy); err != nil {
		return apperrors.NewStoreError("failed to upsert fiscal year "+strconv.Itoa(m.Year), err)
	}
	return nil
}
