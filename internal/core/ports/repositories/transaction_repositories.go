package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its ID. Returns apperrors.ErrNotFound if absent.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactions returns every transaction matching the filter, in no particular order.
	FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// ListTransactions retrieves a newest-first page of transactions using token-based pagination.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for ledger transactions
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransactionStatus moves a non-archived transaction from 'from' to 'to'.
	// Returns apperrors.ErrConflict if the stored status is no longer 'from'.
	UpdateTransactionStatus(ctx context.Context, transactionID string, from, to domain.TransactionStatus, userID string, now time.Time) error
}

// InterestWriter defines the accrual update used by the interest sweep
type InterestWriter interface {
	// ApplyInterest adds interest to an APPROVED loan whose last application is still lastApplied.
	// It reports false, without error, when the guard no longer holds.
	ApplyInterest(ctx context.Context, loanID string, lastApplied time.Time, interest decimal.Decimal, now time.Time) (bool, error)
}

// SettleFunc computes the new payment and loan records from the locked current ones.
type SettleFunc func(payment, loan domain.Transaction) (domain.Settlement, error)

// SettlementWriter defines the atomic two-record update used by payment approval
type SettlementWriter interface {
	// SettlePayment loads the payment and its related loan under lock, calls settle, and
	// persists both results in one store transaction. Nothing is written if settle fails.
	SettlePayment(ctx context.Context, paymentID string, settle SettleFunc) (*domain.Settlement, error)
}

// ArchiveWriter defines the fiscal year bulk update
type ArchiveWriter interface {
	// ArchiveFiscalYear flags every transaction of the year as archived and returns the matched count.
	ArchiveFiscalYear(ctx context.Context, year int, userID string, now time.Time) (int64, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
// This is a facade for clients that need access to all operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	InterestWriter
	SettlementWriter
	ArchiveWriter
}
