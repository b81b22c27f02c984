package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/paluwagan_app/internal/core/ports/services"
	"github.com/SscSPs/paluwagan_app/internal/dto"
	"github.com/SscSPs/paluwagan_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler handles the review, settlement and fiscal year endpoints.
// Every route is mounted behind middleware.RequireAdmin.
type adminHandler struct {
	services *portssvc.ServiceContainer
}

func registerAdminRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &adminHandler{services: services}

	admin := rg.Group("/admin", middleware.RequireAdmin())
	{
		admin.PUT("/transactions/:transactionID/status", h.setStatus)
		admin.POST("/payments/:paymentID/approve", h.approvePayment)
		admin.POST("/interest/run", h.runInterest)

		years := admin.Group("/fiscal-years/:year")
		years.POST("/archive", h.archiveFiscalYear)
		years.GET("/starting-balance", h.getStartingBalance)
		years.PUT("/starting-balance", h.setStartingBalance)
		years.GET("/running-balance", h.runningBalance)

		admin.GET("/members/pending", h.listPendingMembers)
		admin.PUT("/members/:parentID/:memberID/review", h.reviewMember)
	}
}

// yearParam parses the :year path segment. Range checks happen in the service.
func yearParam(c *gin.Context, logger *slog.Logger) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		badRequest(c, logger, err, "fiscal year")
		return 0, false
	}
	return year, true
}

// setStatus godoc
// @Summary Review a transaction
// @Description Approves or rejects a PENDING deposit or loan, or rejects a PENDING payment
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   status body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.TransactionResult
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Illegal transition, archived record or concurrent change"
// @Security BearerAuth
// @Router /admin/transactions/{transactionID}/status [put]
func (h *adminHandler) setStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("transactionID")))
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err, "request format")
		return
	}
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	txn, err := h.services.Ledger.SetStatus(c.Request.Context(), c.Param("transactionID"), req.Status, caller.UserID)
	if err != nil {
		handleError(c, logger, err, "Set status")
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResult(txn))
}

// approvePayment godoc
// @Summary Approve a payment
// @Description Applies a PENDING payment to its loan in one atomic update
// @Tags admin
// @Produce  json
// @Param   paymentID path string true "Payment transaction ID"
// @Success 200 {object} dto.SettlementResponse
// @Failure 404 {object} map[string]string "Payment or loan not found"
// @Failure 409 {object} map[string]string "Payment or loan in the wrong state"
// @Failure 422 {object} map[string]string "Payment exceeds the outstanding balance"
// @Security BearerAuth
// @Router /admin/payments/{paymentID}/approve [post]
func (h *adminHandler) approvePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("payment_id", c.Param("paymentID")))
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	settlement, err := h.services.Settlement.ApprovePayment(c.Request.Context(), c.Param("paymentID"), caller.UserID)
	if err != nil {
		handleError(c, logger, err, "Approve payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettlementResponse(settlement))
}

// runInterest godoc
// @Summary Run the interest sweep
// @Description Adds one month of interest to every approved loan that is due. Safe to repeat.
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.InterestRunResponse
// @Failure 503 {object} map[string]string "Record store unavailable"
// @Security BearerAuth
// @Router /admin/interest/run [post]
func (h *adminHandler) runInterest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.services.Interest.ApplyMonthlyInterest(c.Request.Context())
	if err != nil {
		handleError(c, logger, err, "Interest sweep")
		return
	}
	c.JSON(http.StatusOK, dto.ToInterestRunResponse(result))
}

// archiveFiscalYear godoc
// @Summary Archive a fiscal year
// @Description Flags every transaction of the year as archived. Archiving the current year is allowed but reported.
// @Tags admin
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Success 200 {object} dto.ArchiveResponse
// @Failure 400 {object} map[string]string "Year out of range"
// @Security BearerAuth
// @Router /admin/fiscal-years/{year}/archive [post]
func (h *adminHandler) archiveFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, ok := yearParam(c, logger)
	if !ok {
		return
	}
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	result, err := h.services.FiscalYear.ArchiveFiscalYear(c.Request.Context(), year, caller.UserID)
	if err != nil {
		handleError(c, logger, err, "Archive fiscal year")
		return
	}
	c.JSON(http.StatusOK, dto.ToArchiveResponse(result))
}

// getStartingBalance godoc
// @Summary Get a year's starting balance
// @Description Returns the record, creating it with a zero balance on first access
// @Tags admin
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Success 200 {object} dto.FiscalYearResponse
// @Security BearerAuth
// @Router /admin/fiscal-years/{year}/starting-balance [get]
func (h *adminHandler) getStartingBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, ok := yearParam(c, logger)
	if !ok {
		return
	}

	rec, err := h.services.FiscalYear.GetStartingBalance(c.Request.Context(), year)
	if err != nil {
		handleError(c, logger, err, "Get starting balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(rec))
}

// setStartingBalance godoc
// @Summary Set a year's starting balance
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Param   balance body dto.SetStartingBalanceRequest true "Starting balance"
// @Success 200 {object} dto.FiscalYearResponse
// @Failure 400 {object} map[string]string "Negative balance or year out of range"
// @Security BearerAuth
// @Router /admin/fiscal-years/{year}/starting-balance [put]
func (h *adminHandler) setStartingBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, ok := yearParam(c, logger)
	if !ok {
		return
	}
	var req dto.SetStartingBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err, "request format")
		return
	}
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	rec, err := h.services.FiscalYear.SetStartingBalance(c.Request.Context(), year, req.StartingBalance, caller.UserID)
	if err != nil {
		handleError(c, logger, err, "Set starting balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(rec))
}

// runningBalance godoc
// @Summary Running cash balance for a year
// @Description Replays the year's transactions in creation order from its starting balance
// @Tags admin
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Param   order query string false "asc (default) or desc"
// @Success 200 {object} dto.RunningBalanceResponse
// @Failure 400 {object} map[string]string "Invalid year or order"
// @Security BearerAuth
// @Router /admin/fiscal-years/{year}/running-balance [get]
func (h *adminHandler) runningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, ok := yearParam(c, logger)
	if !ok {
		return
	}
	order := c.DefaultQuery("order", "asc")
	if order != "asc" && order != "desc" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "order must be asc or desc"})
		return
	}

	report, err := h.services.Reporting.RunningBalance(c.Request.Context(), year, order == "desc")
	if err != nil {
		handleError(c, logger, err, "Running balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToRunningBalanceResponse(report))
}

// listPendingMembers godoc
// @Summary List linked members awaiting review
// @Tags admin
// @Produce  json
// @Success 200 {array} dto.LinkedMemberResponse
// @Security BearerAuth
// @Router /admin/members/pending [get]
func (h *adminHandler) listPendingMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	members, err := h.services.LinkedMember.ListPendingMembers(c.Request.Context())
	if err != nil {
		handleError(c, logger, err, "List pending members")
		return
	}
	c.JSON(http.StatusOK, dto.ToLinkedMemberResponses(members))
}

// reviewMember godoc
// @Summary Approve or reject a linked member
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   parentID path string true "Owner user ID"
// @Param   memberID path string true "Linked member ID"
// @Param   decision body dto.ReviewLinkedMemberRequest true "Decision"
// @Success 200 {object} dto.LinkedMemberResponse
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 409 {object} map[string]string "Member already reviewed"
// @Security BearerAuth
// @Router /admin/members/{parentID}/{memberID}/review [put]
func (h *adminHandler) reviewMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("member_id", c.Param("memberID")))
	var req dto.ReviewLinkedMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err, "request format")
		return
	}
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	member, err := h.services.LinkedMember.ReviewLinkedMember(c.Request.Context(), c.Param("parentID"), c.Param("memberID"), *req.Approve, caller.UserID)
	if err != nil {
		handleError(c, logger, err, "Review member")
		return
	}
	c.JSON(http.StatusOK, dto.ToLinkedMemberResponse(member))
}
