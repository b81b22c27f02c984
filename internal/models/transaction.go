package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted form of a ledger entry.
// Loan-only columns are zero (or NULL) for deposits and payments.
type Transaction struct {
	TransactionID         string          `db:"transaction_id" json:"transactionID"`
	OwnerID               string          `db:"owner_id" json:"ownerID"`
	MemberID              *string         `db:"member_id" json:"memberID,omitempty"` // Nullable
	Type                  string          `db:"type" json:"type"`
	Status                string          `db:"status" json:"status"`
	Amount                decimal.Decimal `db:"amount" json:"amount"`
	Principal             decimal.Decimal `db:"principal" json:"principal"`
	Balance               decimal.Decimal `db:"balance" json:"balance"`
	InterestRate          decimal.Decimal `db:"interest_rate" json:"interestRate"`
	TotalInterest         decimal.Decimal `db:"total_interest" json:"totalInterest"`
	LastInterestAppliedAt *time.Time      `db:"last_interest_applied_at" json:"lastInterestAppliedAt,omitempty"`
	LastPaymentAt         *time.Time      `db:"last_payment_at" json:"lastPaymentAt,omitempty"`
	RelatedTransactionID  *string         `db:"related_transaction_id" json:"relatedTransactionID,omitempty"`
	BeneficiaryName       string          `db:"beneficiary_name" json:"beneficiaryName"`
	BeneficiaryKind       *string         `db:"beneficiary_kind" json:"beneficiaryKind,omitempty"` // LOAN only
	FiscalYear            int             `db:"fiscal_year" json:"fiscalYear"`
	IsArchived            bool            `db:"is_archived" json:"isArchived"`
	AuditFields
}
