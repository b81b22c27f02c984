package boltdb

import (
	"context"
	"fmt"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/paluwagan_app/internal/core/ports/repositories"
	"github.com/SscSPs/paluwagan_app/internal/models"
	"github.com/SscSPs/paluwagan_app/internal/utils/mapping"
	bolt "go.etcd.io/bbolt"
)

// BoltFiscalYearRepository stores per-year starting balances keyed by the zero-padded year.
type BoltFiscalYearRepository struct {
	store *store
}

var _ portsrepo.FiscalYearRepositoryFacade = (*BoltFiscalYearRepository)(nil)

func yearKey(year int) string {
	return fmt.Sprintf("%04d", year)
}

func loadFiscalYear(b *bolt.Bucket, year int) (*domain.FiscalYearRecord, error) {
	var m models.FiscalYear
	found, err := getJSON(b, yearKey(year), &m)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: fiscal year %d", apperrors.ErrNotFound, year)
	}
	d := mapping.ToDomainFiscalYear(m)
	return &d, nil
}

// FindFiscalYear retrieves the record for a year.
func (r *BoltFiscalYearRepository) FindFiscalYear(ctx context.Context, year int) (*domain.FiscalYearRecord, error) {
	var rec *domain.FiscalYearRecord
	err := r.store.view(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, BucketFiscalYears)
		if err != nil {
			return err
		}
		rec, err = loadFiscalYear(b, year)
		return err
	})
	return rec, err
}

// CreateFiscalYearIfAbsent inserts rec unless the year exists and returns whatever is stored.
func (r *BoltFiscalYearRepository) CreateFiscalYearIfAbsent(ctx context.Context, rec domain.FiscalYearRecord) (*domain.FiscalYearRecord, error) {
	var stored *domain.FiscalYearRecord
	err := r.store.update(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, BucketFiscalYears)
		if err != nil {
			return err
		}
		if b.Get([]byte(yearKey(rec.Year))) == nil {
			if err := putJSON(b, yearKey(rec.Year), mapping.ToModelFiscalYear(rec)); err != nil {
				return err
			}
		}
		stored, err = loadFiscalYear(b, rec.Year)
		return err
	})
	return stored, err
}

// UpsertFiscalYear replaces the starting balance of a year, creating it if needed.
func (r *BoltFiscalYearRepository) UpsertFiscalYear(ctx context.Context, rec domain.FiscalYearRecord) error {
	return r.store.update(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, BucketFiscalYears)
		if err != nil {
			return err
		}
		return putJSON(b, yearKey(rec.Year), mapping.ToModelFiscalYear(rec))
	})
}
