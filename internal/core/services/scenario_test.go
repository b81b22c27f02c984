package services_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	portssvc "github.com/SscSPs/paluwagan_app/internal/core/ports/services"
	"github.com/SscSPs/paluwagan_app/internal/core/services"
	"github.com/SscSPs/paluwagan_app/internal/dto"
	"github.com/SscSPs/paluwagan_app/internal/platform/clock"
	"github.com/SscSPs/paluwagan_app/internal/platform/config"
	"github.com/SscSPs/paluwagan_app/internal/repositories/database/boltdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	bolt "go.etcd.io/bbolt"
)

// LedgerScenarioTestSuite drives the services end to end against a real bolt file.
type LedgerScenarioTestSuite struct {
	suite.Suite
	db    *bolt.DB
	clock *clock.Manual
	svc   *portssvc.ServiceContainer
	ctx   context.Context
}

func (suite *LedgerScenarioTestSuite) SetupTest() {
	db, err := bolt.Open(filepath.Join(suite.T().TempDir(), "ledger.db"), 0o600, nil)
	suite.Require().NoError(err)
	suite.db = db
	repos, err := boltdb.NewRepositoryProvider(db)
	suite.Require().NoError(err)
	suite.clock = clock.NewManual(time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))
	suite.svc = services.NewServiceContainer(&config.Config{InterestWorkers: 4}, repos, suite.clock)
	suite.ctx = context.Background()
}

func (suite *LedgerScenarioTestSuite) TearDownTest() {
	suite.Require().NoError(suite.db.Close())
}

func TestLedgerScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerScenarioTestSuite))
}

func (suite *LedgerScenarioTestSuite) approvedLoan(principal string, kind domain.BeneficiaryKind) *domain.Transaction {
	loan, err := suite.svc.Ledger.CreateLoan(suite.ctx, dto.CreateLoanRequest{
		Principal:       dec(principal),
		BeneficiaryKind: kind,
		BeneficiaryName: "Juan",
	}, "owner-1")
	suite.Require().NoError(err)
	loan, err = suite.svc.Ledger.SetStatus(suite.ctx, loan.TransactionID, domain.StatusApproved, "admin-1")
	suite.Require().NoError(err)
	return loan
}

func (suite *LedgerScenarioTestSuite) pay(loanID, amount string) (*domain.Settlement, error) {
	payment, err := suite.svc.Ledger.CreatePaymentRequest(suite.ctx, dto.CreatePaymentRequest{
		RelatedTransactionID: loanID,
		Amount:               dec(amount),
		BeneficiaryName:      "Juan",
	}, "owner-1")
	suite.Require().NoError(err)
	return suite.svc.Settlement.ApprovePayment(suite.ctx, payment.TransactionID, "admin-1")
}

func (suite *LedgerScenarioTestSuite) TestLoanCreation_FirstMonthInterest() {
	loan, err := suite.svc.Ledger.CreateLoan(suite.ctx, dto.CreateLoanRequest{
		Principal:       dec("1000"),
		BeneficiaryKind: domain.BeneficiarySelf,
		BeneficiaryName: "Juan",
	}, "owner-1")

	suite.Require().NoError(err)
	assert.True(suite.T(), loan.InterestRate.Equal(dec("0.03")))
	assert.True(suite.T(), loan.TotalInterest.Equal(dec("30")))
	assert.True(suite.T(), loan.Balance.Equal(dec("1030")))
	assert.Equal(suite.T(), domain.StatusPending, loan.Status)
}

func (suite *LedgerScenarioTestSuite) TestFullPayment_MarksLoanPaid() {
	loan := suite.approvedLoan("1000", domain.BeneficiarySelf)

	settled, err := suite.pay(loan.TransactionID, "1030")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.StatusPaid, settled.Loan.Status)
	assert.True(suite.T(), settled.Loan.Balance.IsZero())
	stored, err := suite.svc.Ledger.GetTransaction(suite.ctx, loan.TransactionID, portssvc.Caller{UserID: "owner-1", Role: domain.RoleMember})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.StatusPaid, stored.Status)
}

func (suite *LedgerScenarioTestSuite) TestPartialPayment_KeepsLoanOpen() {
	loan := suite.approvedLoan("1000", domain.BeneficiarySelf)
	_, err := suite.pay(loan.TransactionID, "530")
	suite.Require().NoError(err)

	settled, err := suite.pay(loan.TransactionID, "200")

	suite.Require().NoError(err)
	assert.True(suite.T(), settled.Loan.Balance.Equal(dec("300")))
	assert.Equal(suite.T(), domain.StatusApproved, settled.Loan.Status)
}

func (suite *LedgerScenarioTestSuite) TestOverPayment_LeavesBothRecordsUntouched() {
	loan := suite.approvedLoan("1000", domain.BeneficiarySelf)

	_, err := suite.pay(loan.TransactionID, "1030.01")

	assert.ErrorIs(suite.T(), err, apperrors.ErrOverPayment)
	stored, _ := suite.svc.Ledger.GetTransaction(suite.ctx, loan.TransactionID, portssvc.Caller{UserID: "admin-1", Role: domain.RoleAdmin})
	assert.True(suite.T(), stored.Balance.Equal(dec("1030")))
}

func (suite *LedgerScenarioTestSuite) TestInterestSweep_Idempotent() {
	loan := suite.approvedLoan("1000", domain.BeneficiaryOther)
	require.True(suite.T(), loan.TotalInterest.Equal(dec("50")))

	suite.clock.Advance(31 * 24 * time.Hour)
	result, err := suite.svc.Interest.ApplyMonthlyInterest(suite.ctx)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 1, result.Updated)

	suite.clock.Advance(24 * time.Hour)
	result, err = suite.svc.Interest.ApplyMonthlyInterest(suite.ctx)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 0, result.Updated)
	assert.Equal(suite.T(), 1, result.Skipped)

	stored, _ := suite.svc.Ledger.GetTransaction(suite.ctx, loan.TransactionID, portssvc.Caller{UserID: "admin-1", Role: domain.RoleAdmin})
	assert.True(suite.T(), stored.TotalInterest.Equal(dec("100")))
	assert.True(suite.T(), stored.Balance.Equal(dec("1100")))
	assert.True(suite.T(), stored.Balance.Equal(stored.Principal.Add(stored.TotalInterest)))
}

func (suite *LedgerScenarioTestSuite) TestConcurrentSweeps_ApplyOnce() {
	loan := suite.approvedLoan("1000", domain.BeneficiaryOther)
	suite.clock.Advance(31 * 24 * time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = suite.svc.Interest.ApplyMonthlyInterest(suite.ctx)
		}()
	}
	wg.Wait()

	stored, _ := suite.svc.Ledger.GetTransaction(suite.ctx, loan.TransactionID, portssvc.Caller{UserID: "admin-1", Role: domain.RoleAdmin})
	assert.True(suite.T(), stored.TotalInterest.Equal(dec("100")))
}

func (suite *LedgerScenarioTestSuite) TestConcurrentPayments_NeverOverdraw() {
	loan := suite.approvedLoan("1000", domain.BeneficiarySelf)
	var paymentIDs []string
	for i := 0; i < 3; i++ {
		p, err := suite.svc.Ledger.CreatePaymentRequest(suite.ctx, dto.CreatePaymentRequest{
			RelatedTransactionID: loan.TransactionID,
			Amount:               dec("500"),
			BeneficiaryName:      "Juan",
		}, "owner-1")
		suite.Require().NoError(err)
		paymentIDs = append(paymentIDs, p.TransactionID)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(paymentIDs))
	for i, id := range paymentIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = suite.svc.Settlement.ApprovePayment(suite.ctx, id, "admin-1")
		}()
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(suite.T(), err, apperrors.ErrOverPayment)
			failures++
		}
	}
	assert.Equal(suite.T(), 1, failures)
	stored, _ := suite.svc.Ledger.GetTransaction(suite.ctx, loan.TransactionID, portssvc.Caller{UserID: "admin-1", Role: domain.RoleAdmin})
	assert.True(suite.T(), stored.Balance.Equal(dec("30")))
}

func (suite *LedgerScenarioTestSuite) TestRunningBalance_FromStartingBalance() {
	_, err := suite.svc.FiscalYear.SetStartingBalance(suite.ctx, 2025, dec("10000"), "admin-1")
	suite.Require().NoError(err)

	dep, err := suite.svc.Ledger.CreateDeposit(suite.ctx, dto.CreateDepositRequest{Amount: dec("500"), BeneficiaryName: "Maria"}, "owner-1")
	suite.Require().NoError(err)
	_, err = suite.svc.Ledger.SetStatus(suite.ctx, dep.TransactionID, domain.StatusApproved, "admin-1")
	suite.Require().NoError(err)

	suite.clock.Advance(time.Minute)
	suite.approvedLoan("2000", domain.BeneficiarySelf)

	suite.clock.Advance(time.Minute)
	rejected, err := suite.svc.Ledger.CreateDeposit(suite.ctx, dto.CreateDepositRequest{Amount: dec("999"), BeneficiaryName: "Maria"}, "owner-1")
	suite.Require().NoError(err)
	_, err = suite.svc.Ledger.SetStatus(suite.ctx, rejected.TransactionID, domain.StatusRejected, "admin-1")
	suite.Require().NoError(err)

	report, err := suite.svc.Reporting.RunningBalance(suite.ctx, 2025, false)
	suite.Require().NoError(err)
	require.Len(suite.T(), report.Entries, 3)
	assert.True(suite.T(), report.Entries[0].RunningBalance.Equal(dec("10500")))
	assert.True(suite.T(), report.Entries[1].RunningBalance.Equal(dec("8500")))
	assert.True(suite.T(), report.Entries[2].RunningBalance.Equal(dec("8500")))
	assert.True(suite.T(), report.EndingBalance.Equal(dec("8500")))
}

func (suite *LedgerScenarioTestSuite) TestArchive_FreezesYear() {
	dep, err := suite.svc.Ledger.CreateDeposit(suite.ctx, dto.CreateDepositRequest{Amount: dec("100"), BeneficiaryName: "Maria"}, "owner-1")
	suite.Require().NoError(err)

	result, err := suite.svc.FiscalYear.ArchiveFiscalYear(suite.ctx, 2025, "admin-1")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), result.Count)
	assert.True(suite.T(), result.IsCurrentYear)

	_, err = suite.svc.Ledger.SetStatus(suite.ctx, dep.TransactionID, domain.StatusApproved, "admin-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidState)
}
