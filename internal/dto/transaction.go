package dto

import (
	"time"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDepositRequest defines the data needed to record a savings deposit.
type CreateDepositRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"positive_amount" swaggertype:"string" example:"500.00"`
	BeneficiaryName string          `json:"beneficiaryName" binding:"required,max=100"`
	MemberID        *string         `json:"memberID"` // Optional: linked member transacting under the owner
}

// CreateLoanRequest defines the data needed to request a loan.
type CreateLoanRequest struct {
	Principal       decimal.Decimal        `json:"principal" binding:"positive_amount" swaggertype:"string" example:"1000.00"`
	BeneficiaryKind domain.BeneficiaryKind `json:"beneficiaryKind" binding:"required,oneof=self other"`
	BeneficiaryName string                 `json:"beneficiaryName" binding:"required,max=100"`
	MemberID        *string                `json:"memberID"`
}

// CreatePaymentRequest defines the data needed to request a payment against a loan.
type CreatePaymentRequest struct {
	RelatedTransactionID string          `json:"relatedTransactionID" binding:"required"`
	Amount               decimal.Decimal `json:"amount" binding:"positive_amount" swaggertype:"string" example:"250.00"`
	BeneficiaryName      string          `json:"beneficiaryName" binding:"required,max=100"`
	MemberID             *string         `json:"memberID"`
}

// UpdateStatusRequest defines an admin review decision.
type UpdateStatusRequest struct {
	Status domain.TransactionStatus `json:"status" binding:"required"`
}

// ListTransactionsParams holds query parameters for listing transactions.
type ListTransactionsParams struct {
	FiscalYear *int    `form:"fiscalYear"`
	Type       *string `form:"type" binding:"omitempty,oneof=DEPOSIT LOAN PAYMENT"`
	Status     *string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED PAID"`
	MemberID   *string `form:"memberID"`
	Archived   *bool   `form:"archived"`
	Limit      int     `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken  *string `form:"nextToken"`
}

// ToFilter converts the query parameters into a domain filter.
func (p ListTransactionsParams) ToFilter() domain.TransactionFilter {
	f := domain.TransactionFilter{
		MemberID:   p.MemberID,
		FiscalYear: p.FiscalYear,
		IsArchived: p.Archived,
	}
	if p.Type != nil {
		t := domain.TransactionType(*p.Type)
		f.Type = &t
	}
	if p.Status != nil {
		s := domain.TransactionStatus(*p.Status)
		f.Status = &s
	}
	return f
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID         string                   `json:"transactionID"`
	OwnerID               string                   `json:"ownerID"`
	MemberID              *string                  `json:"memberID,omitempty"`
	Type                  domain.TransactionType   `json:"type"`
	Status                domain.TransactionStatus `json:"status"`
	Amount                *decimal.Decimal         `json:"amount,omitempty" swaggertype:"string"`
	Principal             *decimal.Decimal         `json:"principal,omitempty" swaggertype:"string"`
	Balance               *decimal.Decimal         `json:"balance,omitempty" swaggertype:"string"`
	InterestRate          *decimal.Decimal         `json:"interestRate,omitempty" swaggertype:"string"`
	TotalInterest         *decimal.Decimal         `json:"totalInterest,omitempty" swaggertype:"string"`
	LastInterestAppliedAt *time.Time               `json:"lastInterestAppliedAt,omitempty"`
	LastPaymentAt         *time.Time               `json:"lastPaymentAt,omitempty"`
	RelatedTransactionID  *string                  `json:"relatedTransactionID,omitempty"`
	BeneficiaryName       string                   `json:"beneficiaryName"`
	BeneficiaryKind       domain.BeneficiaryKind   `json:"beneficiaryKind,omitempty"`
	FiscalYear            int                      `json:"fiscalYear"`
	IsArchived            bool                     `json:"isArchived"`
	CreatedAt             time.Time                `json:"createdAt"`
	CreatedBy             string                   `json:"createdBy"`
	LastUpdatedAt         time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy         string                   `json:"lastUpdatedBy"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
// Amount fields that do not apply to the transaction type are omitted.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:         txn.TransactionID,
		OwnerID:               txn.OwnerID,
		MemberID:              txn.MemberID,
		Type:                  txn.Type,
		Status:                txn.Status,
		LastInterestAppliedAt: txn.LastInterestAppliedAt,
		LastPaymentAt:         txn.LastPaymentAt,
		RelatedTransactionID:  txn.RelatedTransactionID,
		BeneficiaryName:       txn.BeneficiaryName,
		BeneficiaryKind:       txn.BeneficiaryKind,
		FiscalYear:            txn.FiscalYear,
		IsArchived:            txn.IsArchived,
		CreatedAt:             txn.CreatedAt,
		CreatedBy:             txn.CreatedBy,
		LastUpdatedAt:         txn.LastUpdatedAt,
		LastUpdatedBy:         txn.LastUpdatedBy,
	}
	if txn.Type == domain.Loan {
		principal, balance, rate, interest := txn.Principal, txn.Balance, txn.InterestRate, txn.TotalInterest
		resp.Principal = &principal
		resp.Balance = &balance
		resp.InterestRate = &rate
		resp.TotalInterest = &interest
	} else {
		amount := txn.Amount
		resp.Amount = &amount
	}
	return resp
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ListTransactionsResponse is one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// SettlementResponse returns both records touched by a payment approval.
type SettlementResponse struct {
	Success bool                `json:"success"`
	Loan    TransactionResponse `json:"loan"`
	Payment TransactionResponse `json:"payment"`
}

// ToSettlementResponse converts a domain.Settlement to SettlementResponse DTO.
func ToSettlementResponse(s *domain.Settlement) SettlementResponse {
	return SettlementResponse{
		Success: true,
		Loan:    ToTransactionResponse(&s.Loan),
		Payment: ToTransactionResponse(&s.Payment),
	}
}

// InterestRunResponse reports an interest sweep.
type InterestRunResponse struct {
	Success   bool                   `json:"success"`
	Processed int                    `json:"processed"`
	Updated   int                    `json:"updated"`
	Skipped   int                    `json:"skipped"`
	Failures  []domain.RecordFailure `json:"failures"`
}

// ToInterestRunResponse converts a domain.BatchResult to InterestRunResponse DTO.
func ToInterestRunResponse(r domain.BatchResult) InterestRunResponse {
	failures := r.Failures
	if failures == nil {
		failures = []domain.RecordFailure{}
	}
	return InterestRunResponse{
		Success:   r.Success(),
		Processed: r.Processed,
		Updated:   r.Updated,
		Skipped:   r.Skipped,
		Failures:  failures,
	}
}

// SummaryResponse is an owner's dashboard totals.
type SummaryResponse struct {
	OwnerID          string          `json:"ownerID"`
	MemberID         *string         `json:"memberID,omitempty"`
	FiscalYear       *int            `json:"fiscalYear,omitempty"`
	TotalSavings     decimal.Decimal `json:"totalSavings" swaggertype:"string"`
	OutstandingLoans decimal.Decimal `json:"outstandingLoans" swaggertype:"string"`
	PendingCount     int             `json:"pendingCount"`
}

// SummaryParams holds query parameters for the owner summary.
type SummaryParams struct {
	FiscalYear *int    `form:"fiscalYear"`
	MemberID   *string `form:"memberID"`
	OwnerID    *string `form:"ownerID"` // Admin only; members always see their own
}

// ToSummaryResponse converts a domain.OwnerSummary to SummaryResponse DTO.
func ToSummaryResponse(s domain.OwnerSummary) SummaryResponse {
	return SummaryResponse(s)
}

// TransactionResult wraps a single transaction returned by a mutating endpoint.
type TransactionResult struct {
	Success     bool                `json:"success"`
	Transaction TransactionResponse `json:"transaction"`
}

// NewTransactionResult builds a successful TransactionResult.
func NewTransactionResult(txn *domain.Transaction) TransactionResult {
	return TransactionResult{Success: true, Transaction: ToTransactionResponse(txn)}
}
