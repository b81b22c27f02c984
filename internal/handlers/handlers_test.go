package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	portssvc "github.com/SscSPs/paluwagan_app/internal/core/ports/services"
	"github.com/SscSPs/paluwagan_app/internal/dto"
	"github.com/SscSPs/paluwagan_app/internal/handlers"
	"github.com/SscSPs/paluwagan_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	jwtSecret  string
	ledger     *MockLedgerService
	interest   *MockInterestService
	settlement *MockSettlementService
	fiscalYear *MockFiscalYearService
	reporting  *MockReportingService
	members    *MockLinkedMemberService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.ledger = new(MockLedgerService)
	suite.interest = new(MockInterestService)
	suite.settlement = new(MockSettlementService)
	suite.fiscalYear = new(MockFiscalYearService)
	suite.reporting = new(MockReportingService)
	suite.members = new(MockLinkedMemberService)

	suite.Require().NoError(handlers.RegisterValidators())
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterAPIRoutes(v1, &portssvc.ServiceContainer{
		Ledger:       suite.ledger,
		Interest:     suite.interest,
		Settlement:   suite.settlement,
		FiscalYear:   suite.fiscalYear,
		Reporting:    suite.reporting,
		LinkedMember: suite.members,
	})
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// generateTestToken creates a signed JWT for userID with the given role.
func (suite *HandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	signed, err := middleware.IssueToken(userID, role, suite.jwtSecret, time.Hour, "paluwagan-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) do(method, url, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, url, nil)
	} else {
		req, _ = http.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.False(body.Success)
	return body.Error
}

func sampleLoan(ownerID string, balance string) *domain.Transaction {
	b := decimal.RequireFromString(balance)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	return &domain.Transaction{
		TransactionID:   uuid.NewString(),
		OwnerID:         ownerID,
		Type:            domain.Loan,
		Status:          domain.StatusApproved,
		Principal:       decimal.NewFromInt(1000),
		Balance:         b,
		InterestRate:    decimal.RequireFromString("0.03"),
		TotalInterest:   decimal.NewFromInt(30),
		BeneficiaryName: "Juan",
		BeneficiaryKind: domain.BeneficiarySelf,
		FiscalYear:      2025,
		AuditFields:     domain.AuditFields{CreatedAt: now, CreatedBy: ownerID, LastUpdatedAt: now, LastUpdatedBy: ownerID},
	}
}

func (suite *HandlerTestSuite) TestCreateDeposit_Success() {
	ownerID := uuid.NewString()
	deposit := &domain.Transaction{
		TransactionID:   uuid.NewString(),
		OwnerID:         ownerID,
		Type:            domain.Deposit,
		Status:          domain.StatusPending,
		Amount:          decimal.NewFromInt(500),
		BeneficiaryName: "Maria",
		FiscalYear:      2025,
	}
	suite.ledger.On("CreateDeposit", mock.Anything,
		mock.MatchedBy(func(req dto.CreateDepositRequest) bool {
			return req.Amount.Equal(decimal.NewFromInt(500)) && req.BeneficiaryName == "Maria"
		}),
		ownerID,
	).Return(deposit, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/deposits", `{"amount":"500.00","beneficiaryName":"Maria"}`,
		suite.generateTestToken(ownerID, domain.RoleMember))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(deposit.TransactionID, resp.Transaction.TransactionID)
	suite.Require().NotNil(resp.Transaction.Amount)
	suite.True(resp.Transaction.Amount.Equal(decimal.NewFromInt(500)))
	suite.Nil(resp.Transaction.Balance)
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateDeposit_RejectsNonPositiveAmount() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleMember)

	for _, amount := range []string{`"0"`, `"-5"`, `"0.004"`, `"1000.005"`} {
		w := suite.do(http.MethodPost, "/api/v1/transactions/deposits",
			fmt.Sprintf(`{"amount":%s,"beneficiaryName":"Maria"}`, amount), token)
		suite.Equal(http.StatusBadRequest, w.Code, "amount %s", amount)
	}
	suite.ledger.AssertNotCalled(suite.T(), "CreateDeposit")
}

func (suite *HandlerTestSuite) TestCreateLoanAndPayment_RejectFractionsOfACentavo() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleMember)

	w := suite.do(http.MethodPost, "/api/v1/transactions/loans",
		`{"principal":"0.001","beneficiaryKind":"self","beneficiaryName":"Juan"}`, token)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/transactions/payments",
		`{"amount":"0.003","relatedTransactionID":"loan-1","beneficiaryName":"Juan"}`, token)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.ledger.AssertNotCalled(suite.T(), "CreateLoan")
	suite.ledger.AssertNotCalled(suite.T(), "CreatePaymentRequest")
}

func (suite *HandlerTestSuite) TestCreateLoan_RejectsUnknownBeneficiaryKind() {
	w := suite.do(http.MethodPost, "/api/v1/transactions/loans",
		`{"principal":"1000","beneficiaryKind":"cousin","beneficiaryName":"Juan"}`,
		suite.generateTestToken(uuid.NewString(), domain.RoleMember))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.ledger.AssertNotCalled(suite.T(), "CreateLoan")
}

func (suite *HandlerTestSuite) TestMissingToken_Unauthorized() {
	w := suite.do(http.MethodGet, "/api/v1/transactions", "", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.ledger.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *HandlerTestSuite) TestGetTransaction_ForbiddenForOtherOwner() {
	callerID := uuid.NewString()
	suite.ledger.On("GetTransaction", mock.Anything, "txn-1",
		portssvc.Caller{UserID: callerID, Role: domain.RoleMember},
	).Return(nil, apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/txn-1", "", suite.generateTestToken(callerID, domain.RoleMember))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListTransactions_PassesFilters() {
	callerID := uuid.NewString()
	next := "token-2"
	suite.ledger.On("ListTransactions", mock.Anything,
		portssvc.Caller{UserID: callerID, Role: domain.RoleAdmin},
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == 2 && p.Type != nil && *p.Type == "LOAN" && p.FiscalYear != nil && *p.FiscalYear == 2025
		}),
	).Return(&dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}, NextToken: &next}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?type=LOAN&fiscalYear=2025&limit=2", "",
		suite.generateTestToken(callerID, domain.RoleAdmin))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListTransactions_InvalidType() {
	w := suite.do(http.MethodGet, "/api/v1/transactions?type=TRANSFER", "",
		suite.generateTestToken(uuid.NewString(), domain.RoleMember))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAdminRoute_RefusesMember() {
	w := suite.do(http.MethodPost, "/api/v1/admin/interest/run", "", suite.generateTestToken(uuid.NewString(), domain.RoleMember))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.interest.AssertNotCalled(suite.T(), "ApplyMonthlyInterest")
}

func (suite *HandlerTestSuite) TestApprovePayment_Success() {
	adminID := uuid.NewString()
	loan := sampleLoan("owner-1", "300")
	payment := domain.Transaction{
		TransactionID:        "pay-1",
		OwnerID:              "owner-1",
		Type:                 domain.Payment,
		Status:               domain.StatusApproved,
		Amount:               decimal.NewFromInt(730),
		RelatedTransactionID: &loan.TransactionID,
	}
	suite.settlement.On("ApprovePayment", mock.Anything, "pay-1", adminID).
		Return(&domain.Settlement{Loan: *loan, Payment: payment}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/payments/pay-1/approve", "", suite.generateTestToken(adminID, domain.RoleAdmin))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SettlementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Require().NotNil(resp.Loan.Balance)
	suite.True(resp.Loan.Balance.Equal(decimal.NewFromInt(300)))
	suite.Equal(domain.StatusApproved, resp.Payment.Status)
	suite.settlement.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestApprovePayment_OverPayment() {
	adminID := uuid.NewString()
	suite.settlement.On("ApprovePayment", mock.Anything, "pay-1", adminID).
		Return(nil, fmt.Errorf("%w: payment 1030.01 exceeds balance 1030", apperrors.ErrOverPayment)).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/payments/pay-1/approve", "", suite.generateTestToken(adminID, domain.RoleAdmin))

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(suite.errorBody(w), "exceeds")
}

func (suite *HandlerTestSuite) TestApprovePayment_StoreUnavailableHidesDetail() {
	adminID := uuid.NewString()
	suite.settlement.On("ApprovePayment", mock.Anything, "pay-1", adminID).
		Return(nil, apperrors.NewStoreError("settle payment", fmt.Errorf("dial tcp 10.0.0.5:5432: connection refused"))).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/payments/pay-1/approve", "", suite.generateTestToken(adminID, domain.RoleAdmin))

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.NotContains(suite.errorBody(w), "10.0.0.5")
}

func (suite *HandlerTestSuite) TestSetStatus_Conflict() {
	adminID := uuid.NewString()
	suite.ledger.On("SetStatus", mock.Anything, "txn-1", domain.StatusApproved, adminID).
		Return(nil, apperrors.ErrConflict).Once()

	w := suite.do(http.MethodPut, "/api/v1/admin/transactions/txn-1/status", `{"status":"APPROVED"}`,
		suite.generateTestToken(adminID, domain.RoleAdmin))

	suite.Equal(http.StatusConflict, w.Code)
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestSetStatus_IllegalTransition() {
	adminID := uuid.NewString()
	suite.ledger.On("SetStatus", mock.Anything, "txn-1", domain.StatusPending, adminID).
		Return(nil, apperrors.ErrInvalidTransition).Once()

	w := suite.do(http.MethodPut, "/api/v1/admin/transactions/txn-1/status", `{"status":"PENDING"}`,
		suite.generateTestToken(adminID, domain.RoleAdmin))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestRunInterest_ReportsCounts() {
	suite.interest.On("ApplyMonthlyInterest", mock.Anything).Return(domain.BatchResult{
		Processed: 3,
		Updated:   1,
		Skipped:   1,
		Failures:  []domain.RecordFailure{{TransactionID: "loan-9", Error: "record store unavailable"}},
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/interest/run", "", suite.generateTestToken(uuid.NewString(), domain.RoleAdmin))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.InterestRunResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.Equal(3, resp.Processed)
	suite.Equal(1, resp.Updated)
	suite.Require().Len(resp.Failures, 1)
	suite.Equal("loan-9", resp.Failures[0].TransactionID)
}

func (suite *HandlerTestSuite) TestArchiveFiscalYear_CurrentYearWarns() {
	adminID := uuid.NewString()
	suite.fiscalYear.On("ArchiveFiscalYear", mock.Anything, 2025, adminID).
		Return(domain.ArchiveResult{Year: 2025, Count: 12, IsCurrentYear: true}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/fiscal-years/2025/archive", "", suite.generateTestToken(adminID, domain.RoleAdmin))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ArchiveResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(12), resp.Count)
	suite.True(resp.IsCurrentYear)
	suite.NotEmpty(resp.Warning)
}

func (suite *HandlerTestSuite) TestFiscalYear_BadYearParam() {
	w := suite.do(http.MethodGet, "/api/v1/admin/fiscal-years/twenty/starting-balance", "",
		suite.generateTestToken(uuid.NewString(), domain.RoleAdmin))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.fiscalYear.AssertNotCalled(suite.T(), "GetStartingBalance")
}

func (suite *HandlerTestSuite) TestSetStartingBalance_Success() {
	adminID := uuid.NewString()
	suite.fiscalYear.On("SetStartingBalance", mock.Anything, 2025,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(15000)) }),
		adminID,
	).Return(&domain.FiscalYearRecord{Year: 2025, StartingBalance: decimal.NewFromInt(15000), UpdatedBy: adminID}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/admin/fiscal-years/2025/starting-balance", `{"startingBalance":"15000.00"}`,
		suite.generateTestToken(adminID, domain.RoleAdmin))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FiscalYearResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.StartingBalance.Equal(decimal.NewFromInt(15000)))
	suite.Equal(adminID, resp.UpdatedBy)
}

func (suite *HandlerTestSuite) TestSetStartingBalance_NegativeRejected() {
	adminID := uuid.NewString()
	suite.fiscalYear.On("SetStartingBalance", mock.Anything, 2025, mock.Anything, adminID).
		Return(nil, fmt.Errorf("%w: starting balance must not be negative", apperrors.ErrInvalidAmount)).Once()

	w := suite.do(http.MethodPut, "/api/v1/admin/fiscal-years/2025/starting-balance", `{"startingBalance":"-1"}`,
		suite.generateTestToken(adminID, domain.RoleAdmin))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRunningBalance_Order() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleAdmin)
	suite.reporting.On("RunningBalance", mock.Anything, 2025, true).Return(&domain.RunningBalanceReport{
		Year:            2025,
		StartingBalance: decimal.NewFromInt(10000),
		EndingBalance:   decimal.NewFromInt(8500),
		Entries:         []domain.LedgerEntry{},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/fiscal-years/2025/running-balance?order=desc", "", token)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RunningBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.EndingBalance.Equal(decimal.NewFromInt(8500)))

	w = suite.do(http.MethodGet, "/api/v1/admin/fiscal-years/2025/running-balance?order=sideways", "", token)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.reporting.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestSummary_MemberCannotReadOtherOwner() {
	callerID := uuid.NewString()
	suite.reporting.On("OwnerSummary", mock.Anything, callerID, mock.Anything, mock.Anything).
		Return(domain.OwnerSummary{OwnerID: callerID, TotalSavings: decimal.NewFromInt(500), OutstandingLoans: decimal.Zero}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/summary?ownerID=someone-else", "", suite.generateTestToken(callerID, domain.RoleMember))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(callerID, resp.OwnerID)
	suite.reporting.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestSummary_AdminReadsAnyOwner() {
	suite.reporting.On("OwnerSummary", mock.Anything, "owner-7", mock.Anything, mock.Anything).
		Return(domain.OwnerSummary{OwnerID: "owner-7"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/summary?ownerID=owner-7", "", suite.generateTestToken(uuid.NewString(), domain.RoleAdmin))

	suite.Equal(http.StatusOK, w.Code)
	suite.reporting.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestAddMember_Success() {
	callerID := uuid.NewString()
	member := &domain.LinkedMember{MemberID: "m-1", ParentID: callerID, Name: "Ana", Relationship: domain.DefaultRelationship, Status: domain.MemberPending}
	suite.members.On("AddLinkedMember", mock.Anything, callerID, dto.AddLinkedMemberRequest{Name: "Ana"}).Return(member, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/members", `{"name":"Ana"}`, suite.generateTestToken(callerID, domain.RoleMember))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.LinkedMemberResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.MemberPending, resp.Status)
	suite.members.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestReviewMember_RequiresDecision() {
	w := suite.do(http.MethodPut, "/api/v1/admin/members/parent-1/m-1/review", `{}`,
		suite.generateTestToken(uuid.NewString(), domain.RoleAdmin))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.members.AssertNotCalled(suite.T(), "ReviewLinkedMember")
}

func (suite *HandlerTestSuite) TestReviewMember_AlreadyReviewed() {
	adminID := uuid.NewString()
	suite.members.On("ReviewLinkedMember", mock.Anything, "parent-1", "m-1", false, adminID).
		Return(nil, apperrors.ErrConflict).Once()

	w := suite.do(http.MethodPut, "/api/v1/admin/members/parent-1/m-1/review", `{"approve":false}`,
		suite.generateTestToken(adminID, domain.RoleAdmin))

	suite.Equal(http.StatusConflict, w.Code)
	suite.members.AssertExpectations(suite.T())
}
