package boltdb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/paluwagan_app/internal/core/ports/repositories"
	"github.com/SscSPs/paluwagan_app/internal/models"
	"github.com/SscSPs/paluwagan_app/internal/utils/mapping"
	"github.com/SscSPs/paluwagan_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
	bolt "go.etcd.io/bbolt"
)

// BoltTransactionRepository stores ledger transactions as JSON keyed by transaction id.
type BoltTransactionRepository struct {
	store *store
}

var _ portsrepo.TransactionRepositoryFacade = (*BoltTransactionRepository)(nil)

func loadTransaction(b *bolt.Bucket, id string) (*domain.Transaction, error) {
	var m models.Transaction
	found, err := getJSON(b, id, &m)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, id)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

func storeTransaction(b *bolt.Bucket, t domain.Transaction) error {
	return putJSON(b, t.TransactionID, mapping.ToModelTransaction(t))
}

func (r *BoltTransactionRepository) scan(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var out []domain.Transaction
	err := r.store.view(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, BucketTransactions)
		if err != nil {
			return err
		}
		return forEachJSON(b, nil, func(_ []byte, m models.Transaction) error {
			d := mapping.ToDomainTransaction(m)
			if filter.Matches(d) {
				out = append(out, d)
			}
			return nil
		})
	})
	return out, err
}

// SaveTransaction inserts a new transaction.
func (r *BoltTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return r.store.update(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, BucketTransactions)
		if err != nil {
			return err
		}
		if b.Get([]byte(txn.TransactionID)) != nil {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrConflict, txn.TransactionID)
		}
		return storeTransaction(b, txn)
	})
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *BoltTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	var found *domain.Transaction
	err := r.store.view(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, BucketTransactions)
		if err != nil {
			return err
		}
		found, err = loadTransaction(b, transactionID)
		return err
	})
	return found, err
}

// FindTransactions returns every transaction matching the filter, in id order.
func (r *BoltTransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return r.scan(ctx, filter)
}

// ListTransactions returns a newest-first page keyed on (createdAt, transactionID).
func (r *BoltTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	limit = pagination.ClampLimit(limit)

	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		cursor = &c
	}

	all, err := r.scan(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].TransactionID > all[j].TransactionID
	})

	page := make([]domain.Transaction, 0, limit)
	var nextTokenVal *string
	for _, t := range all {
		if cursor != nil && !cursor.After(t.CreatedAt, t.TransactionID) {
			continue
		}
		if len(page) == limit {
			last := page[limit-1]
			token := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.TransactionID})
			nextTokenVal = &token
			break
		}
		page = append(page, t)
	}
	return page, nextTokenVal, nil
}

// UpdateTransactionStatus moves a non-archived transaction from one status to another.
func (r *BoltTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, from, to domain.TransactionStatus, userID string, now time.Time) error {
	return r.store.update(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, BucketTransactions)
		if err != nil {
			return err
		}
		t, err := loadTransaction(b, transactionID)
		if err != nil {
			return err
		}
		if t.Status != from || t.IsArchived {
			return fmt.Errorf("%w: transaction %s is no longer %s", apperrors.ErrConflict, transactionID, from)
		}
		t.Status = to
		t.LastUpdatedAt = now
		t.LastUpdatedBy = userID
		return storeTransaction(b, *t)
	})
}

// ApplyInterest adds one period of interest to an approved loan if its accrual
// timestamp still equals lastApplied.
func (r *BoltTransactionRepository) ApplyInterest(ctx context.Context, loanID string, lastApplied time.Time, interest decimal.Decimal, now time.Time) (bool, error) {
	applied := false
	err := r.store.update(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, BucketTransactions)
		if err != nil {
			return err
		}
		t, err := loadTransaction(b, loanID)
		if err != nil {
			return err
		}
		if t.Type != domain.Loan || t.Status != domain.StatusApproved ||
			t.LastInterestAppliedAt == nil || !t.LastInterestAppliedAt.Equal(lastApplied) {
			return nil
		}
		appliedAt := now
		t.Balance = t.Balance.Add(interest)
		t.TotalInterest = t.TotalInterest.Add(interest)
		t.LastInterestAppliedAt = &appliedAt
		t.LastUpdatedAt = now
		if err := storeTransaction(b, *t); err != nil {
			return err
		}
		applied = true
		return nil
	})
	return applied, err
}

// SettlePayment reads the payment and its loan, runs settle, and writes both in one bolt transaction.
func (r *BoltTransactionRepository) SettlePayment(ctx context.Context, paymentID string, settle portsrepo.SettleFunc) (*domain.Settlement, error) {
	var result *domain.Settlement
	err := r.store.update(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, BucketTransactions)
		if err != nil {
			return err
		}
		payment, err := loadTransaction(b, paymentID)
		if err != nil {
			return err
		}
		if err := payment.ValidateSettleable(); err != nil {
			return err
		}
		loan, err := loadTransaction(b, *payment.RelatedTransactionID)
		if err != nil {
			return err
		}

		settled, err := settle(*payment, *loan)
		if err != nil {
			return err
		}
		if err := storeTransaction(b, settled.Loan); err != nil {
			return err
		}
		if err := storeTransaction(b, settled.Payment); err != nil {
			return err
		}
		result = &settled
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ArchiveFiscalYear flags every transaction of a year as archived.
func (r *BoltTransactionRepository) ArchiveFiscalYear(ctx context.Context, year int, userID string, now time.Time) (int64, error) {
	var count int64
	err := r.store.update(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, BucketTransactions)
		if err != nil {
			return err
		}
		var matched []models.Transaction
		err = forEachJSON(b, nil, func(_ []byte, m models.Transaction) error {
			if m.FiscalYear == year {
				matched = append(matched, m)
			}
			return nil
		})
		if err != nil {
			return err
		}
		// Writes happen after the walk; bolt cursors must not see their own puts.
		for _, m := range matched {
			m.IsArchived = true
			m.LastUpdatedAt = now
			m.LastUpdatedBy = userID
			if err := putJSON(b, m.TransactionID, m); err != nil {
				return err
			}
		}
		count = int64(len(matched))
		return nil
	})
	return count, err
}
