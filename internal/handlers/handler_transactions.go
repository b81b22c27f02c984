package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/paluwagan_app/internal/core/ports/services"
	"github.com/SscSPs/paluwagan_app/internal/dto"
	"github.com/SscSPs/paluwagan_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles member-facing ledger requests.
type transactionHandler struct {
	ledgerService    portssvc.LedgerSvcFacade
	reportingService portssvc.ReportingSvc
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade, rs portssvc.ReportingSvc) *transactionHandler {
	return &transactionHandler{ledgerService: ls, reportingService: rs}
}

func registerTransactionRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade, rs portssvc.ReportingSvc) {
	h := newTransactionHandler(ls, rs)

	txns := rg.Group("/transactions")
	{
		txns.POST("/deposits", h.createDeposit)
		txns.POST("/loans", h.createLoan)
		txns.POST("/payments", h.createPayment)
		txns.GET("", h.listTransactions)
		txns.GET("/:transactionID", h.getTransaction)
	}
	rg.GET("/summary", h.getSummary)
}

// callerFrom reads the authenticated caller. It writes a 401 and returns false if absent.
func callerFrom(c *gin.Context) (portssvc.Caller, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return portssvc.Caller{}, false
	}
	return portssvc.Caller{UserID: userID, Role: middleware.GetRoleFromContext(c)}, true
}

// createDeposit godoc
// @Summary Record a savings deposit
// @Description Creates a PENDING deposit owned by the caller
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   deposit body dto.CreateDepositRequest true "Deposit details"
// @Success 201 {object} dto.TransactionResult
// @Failure 400 {object} map[string]string "Invalid input or non-positive amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Record store unavailable"
// @Security BearerAuth
// @Router /transactions/deposits [post]
func (h *transactionHandler) createDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err, "request format")
		return
	}
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.CreateDeposit(c.Request.Context(), req, caller.UserID)
	if err != nil {
		handleError(c, logger, err, "Create deposit")
		return
	}
	c.JSON(http.StatusCreated, dto.NewTransactionResult(txn))
}

// createLoan godoc
// @Summary Request a loan
// @Description Creates a PENDING loan with the first month of interest already applied
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.TransactionResult
// @Failure 400 {object} map[string]string "Invalid input or non-positive principal"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Record store unavailable"
// @Security BearerAuth
// @Router /transactions/loans [post]
func (h *transactionHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err, "request format")
		return
	}
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.CreateLoan(c.Request.Context(), req, caller.UserID)
	if err != nil {
		handleError(c, logger, err, "Create loan")
		return
	}
	c.JSON(http.StatusCreated, dto.NewTransactionResult(txn))
}

// createPayment godoc
// @Summary Request a loan payment
// @Description Creates a PENDING payment; the loan balance is checked when an admin approves it
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.TransactionResult
// @Failure 400 {object} map[string]string "Invalid input or non-positive amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /transactions/payments [post]
func (h *transactionHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err, "request format")
		return
	}
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.CreatePaymentRequest(c.Request.Context(), req, caller.UserID)
	if err != nil {
		handleError(c, logger, err, "Create payment request")
		return
	}
	c.JSON(http.StatusCreated, dto.NewTransactionResult(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Newest-first page of transactions. Members only see their own; admins see all.
// @Tags transactions
// @Produce  json
// @Param   fiscalYear query int false "Fiscal year"
// @Param   type query string false "DEPOSIT, LOAN or PAYMENT"
// @Param   status query string false "PENDING, APPROVED, REJECTED or PAID"
// @Param   memberID query string false "Linked member"
// @Param   archived query bool false "Archived flag"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, err, "query parameters")
		return
	}
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	resp, err := h.ledgerService.ListTransactions(c.Request.Context(), caller, params)
	if err != nil {
		handleError(c, logger, err, "List transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} map[string]string "Owned by someone else"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("transactionID")))
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.GetTransaction(c.Request.Context(), c.Param("transactionID"), caller)
	if err != nil {
		handleError(c, logger, err, "Get transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// getSummary godoc
// @Summary Savings and loan totals
// @Description Approved savings, outstanding loan balances and pending count for the caller (or, for admins, any owner)
// @Tags transactions
// @Produce  json
// @Param   fiscalYear query int false "Fiscal year"
// @Param   memberID query string false "Linked member"
// @Param   ownerID query string false "Owner (admin only)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /summary [get]
func (h *transactionHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, err, "query parameters")
		return
	}
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	ownerID := caller.UserID
	if caller.Role.IsAdmin() && params.OwnerID != nil && *params.OwnerID != "" {
		ownerID = *params.OwnerID
	}
	summary, err := h.reportingService.OwnerSummary(c.Request.Context(), ownerID, params.MemberID, params.FiscalYear)
	if err != nil {
		handleError(c, logger, err, "Build summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
