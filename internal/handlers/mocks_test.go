package handlers_test

import (
	"context"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	portssvc "github.com/SscSPs/paluwagan_app/internal/core/ports/services"
	"github.com/SscSPs/paluwagan_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetTransaction(ctx context.Context, transactionID string, caller portssvc.Caller) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) ListTransactions(ctx context.Context, caller portssvc.Caller, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, caller, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}
func (m *MockLedgerService) CreateDeposit(ctx context.Context, req dto.CreateDepositRequest, ownerID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest, ownerID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) CreatePaymentRequest(ctx context.Context, req dto.CreatePaymentRequest, ownerID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) SetStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, actorID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, status, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock InterestService ---
type MockInterestService struct {
	mock.Mock
}

func (m *MockInterestService) ApplyMonthlyInterest(ctx context.Context) (domain.BatchResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.BatchResult), args.Error(1)
}

var _ portssvc.InterestSvc = (*MockInterestService)(nil)

// --- Mock SettlementService ---
type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) ApprovePayment(ctx context.Context, paymentID string, actorID string) (*domain.Settlement, error) {
	args := m.Called(ctx, paymentID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

var _ portssvc.SettlementSvc = (*MockSettlementService)(nil)

// --- Mock FiscalYearService ---
type MockFiscalYearService struct {
	mock.Mock
}

func (m *MockFiscalYearService) GetStartingBalance(ctx context.Context, year int) (*domain.FiscalYearRecord, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYearRecord), args.Error(1)
}
func (m *MockFiscalYearService) SetStartingBalance(ctx context.Context, year int, amount decimal.Decimal, actorID string) (*domain.FiscalYearRecord, error) {
	args := m.Called(ctx, year, amount, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYearRecord), args.Error(1)
}
func (m *MockFiscalYearService) ArchiveFiscalYear(ctx context.Context, year int, actorID string) (domain.ArchiveResult, error) {
	args := m.Called(ctx, year, actorID)
	return args.Get(0).(domain.ArchiveResult), args.Error(1)
}

var _ portssvc.FiscalYearSvc = (*MockFiscalYearService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) RunningBalance(ctx context.Context, year int, descending bool) (*domain.RunningBalanceReport, error) {
	args := m.Called(ctx, year, descending)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RunningBalanceReport), args.Error(1)
}
func (m *MockReportingService) OwnerSummary(ctx context.Context, ownerID string, memberID *string, fiscalYear *int) (domain.OwnerSummary, error) {
	args := m.Called(ctx, ownerID, memberID, fiscalYear)
	return args.Get(0).(domain.OwnerSummary), args.Error(1)
}

var _ portssvc.ReportingSvc = (*MockReportingService)(nil)

// --- Mock LinkedMemberService ---
type MockLinkedMemberService struct {
	mock.Mock
}

func (m *MockLinkedMemberService) AddLinkedMember(ctx context.Context, parentID string, req dto.AddLinkedMemberRequest) (*domain.LinkedMember, error) {
	args := m.Called(ctx, parentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LinkedMember), args.Error(1)
}
func (m *MockLinkedMemberService) ListLinkedMembers(ctx context.Context, parentID string) ([]domain.LinkedMember, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LinkedMember), args.Error(1)
}
func (m *MockLinkedMemberService) ListPendingMembers(ctx context.Context) ([]domain.LinkedMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LinkedMember), args.Error(1)
}
func (m *MockLinkedMemberService) ReviewLinkedMember(ctx context.Context, parentID, memberID string, approve bool, adminID string) (*domain.LinkedMember, error) {
	args := m.Called(ctx, parentID, memberID, approve, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LinkedMember), args.Error(1)
}

var _ portssvc.LinkedMemberSvc = (*MockLinkedMemberService)(nil)
