package services

import (
	"context"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	"github.com/SscSPs/paluwagan_app/internal/dto"
)

// Caller identifies who is acting, as resolved by the authentication layer.
type Caller struct {
	UserID string
	Role   domain.UserRole
}

// LedgerReaderSvc defines read operations for ledger transactions
type LedgerReaderSvc interface {
	// GetTransaction retrieves a transaction. Members may only read their own.
	GetTransaction(ctx context.Context, transactionID string, caller Caller) (*domain.Transaction, error)

	// ListTransactions retrieves a newest-first page of transactions. Members only see their own.
	ListTransactions(ctx context.Context, caller Caller, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// LedgerWriterSvc defines the transaction lifecycle operations
type LedgerWriterSvc interface {
	// CreateDeposit records a pending DEPOSIT for the owner.
	CreateDeposit(ctx context.Context, req dto.CreateDepositRequest, ownerID string) (*domain.Transaction, error)

	// CreateLoan records a pending LOAN with its first month of interest applied.
	CreateLoan(ctx context.Context, req dto.CreateLoanRequest, ownerID string) (*domain.Transaction, error)

	// CreatePaymentRequest records a pending PAYMENT against a loan.
	CreatePaymentRequest(ctx context.Context, req dto.CreatePaymentRequest, ownerID string) (*domain.Transaction, error)

	// SetStatus applies an admin review decision.
	SetStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, actorID string) (*domain.Transaction, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}

// InterestSvc runs the interest accrual sweep
type InterestSvc interface {
	// ApplyMonthlyInterest adds one period of interest to every eligible loan.
	ApplyMonthlyInterest(ctx context.Context) (domain.BatchResult, error)
}

// SettlementSvc approves payments
type SettlementSvc interface {
	// ApprovePayment settles a pending payment against its loan atomically.
	ApprovePayment(ctx context.Context, paymentID string, actorID string) (*domain.Settlement, error)
}
