package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/paluwagan_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

// Ensure MockTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, from, to domain.TransactionStatus, userID string, now time.Time) error {
	args := m.Called(ctx, transactionID, from, to, userID, now)
	return args.Error(0)
}

func (m *MockTransactionRepository) ApplyInterest(ctx context.Context, loanID string, lastApplied time.Time, interest decimal.Decimal, now time.Time) (bool, error) {
	args := m.Called(ctx, loanID, lastApplied, interest, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) SettlePayment(ctx context.Context, paymentID string, settle portsrepo.SettleFunc) (*domain.Settlement, error) {
	args := m.Called(ctx, paymentID, settle)
	if fn, ok := args.Get(0).(func(portsrepo.SettleFunc) (*domain.Settlement, error)); ok {
		return fn(settle)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

func (m *MockTransactionRepository) ArchiveFiscalYear(ctx context.Context, year int, userID string, now time.Time) (int64, error) {
	args := m.Called(ctx, year, userID, now)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock FiscalYearRepository ---
type MockFiscalYearRepository struct {
	mock.Mock
}

var _ portsrepo.FiscalYearRepositoryFacade = (*MockFiscalYearRepository)(nil)

func (m *MockFiscalYearRepository) FindFiscalYear(ctx context.Context, year int) (*domain.FiscalYearRecord, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYearRecord), args.Error(1)
}

func (m *MockFiscalYearRepository) CreateFiscalYearIfAbsent(ctx context.Context, rec domain.FiscalYearRecord) (*domain.FiscalYearRecord, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYearRecord), args.Error(1)
}

func (m *MockFiscalYearRepository) UpsertFiscalYear(ctx context.Context, rec domain.FiscalYearRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

// --- Mock LinkedMemberRepository ---
type MockLinkedMemberRepository struct {
	mock.Mock
}

var _ portsrepo.LinkedMemberRepositoryFacade = (*MockLinkedMemberRepository)(nil)

func (m *MockLinkedMemberRepository) FindLinkedMember(ctx context.Context, parentID, memberID string) (*domain.LinkedMember, error) {
	args := m.Called(ctx, parentID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LinkedMember), args.Error(1)
}

func (m *MockLinkedMemberRepository) ListLinkedMembersByParent(ctx context.Context, parentID string) ([]domain.LinkedMember, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LinkedMember), args.Error(1)
}

func (m *MockLinkedMemberRepository) ListLinkedMembersByStatus(ctx context.Context, status domain.MemberStatus) ([]domain.LinkedMember, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LinkedMember), args.Error(1)
}

func (m *MockLinkedMemberRepository) SaveLinkedMember(ctx context.Context, member domain.LinkedMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockLinkedMemberRepository) UpdateLinkedMemberReview(ctx context.Context, member domain.LinkedMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

// decEq matches a decimal argument by numeric value rather than representation.
func decEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}
