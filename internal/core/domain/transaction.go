package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType is the kind of ledger entry.
type TransactionType string

const (
	Deposit TransactionType = "DEPOSIT" // HULOG
	Loan    TransactionType = "LOAN"    // UTANG
	Payment TransactionType = "PAYMENT"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case Deposit, Loan, Payment:
		return true
	}
	return false
}

// TransactionStatus is the review state of a ledger entry.
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "PENDING"
	StatusApproved TransactionStatus = "APPROVED"
	StatusRejected TransactionStatus = "REJECTED"
	StatusPaid     TransactionStatus = "PAID"
)

// IsValid reports whether s is a known status.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusPaid:
		return true
	}
	return false
}

// IsTerminal reports whether no transition out of s exists for any type.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusPaid
}

// IsSettled reports whether the entry moved cash (approved, or a loan that is fully paid).
func (s TransactionStatus) IsSettled() bool {
	return s == StatusApproved || s == StatusPaid
}

// BeneficiaryKind identifies who ultimately benefits from a loan.
type BeneficiaryKind string

const (
	BeneficiarySelf  BeneficiaryKind = "self"
	BeneficiaryOther BeneficiaryKind = "other"
)

// IsValid reports whether k is a known beneficiary kind.
func (k BeneficiaryKind) IsValid() bool {
	return k == BeneficiarySelf || k == BeneficiaryOther
}

var (
	selfInterestRate  = decimal.RequireFromString("0.03")
	otherInterestRate = decimal.RequireFromString("0.05")
)

// InterestPeriodDays is the minimum number of days between two interest applications.
const InterestPeriodDays = 30

// InterestRateFor returns the monthly simple-interest rate for a beneficiary kind.
func InterestRateFor(kind BeneficiaryKind) decimal.Decimal {
	if kind == BeneficiarySelf {
		return selfInterestRate
	}
	return otherInterestRate
}

// Transaction is the atomic ledger entry. Loan-only fields are zero for other types.
type Transaction struct {
	TransactionID         string            `json:"transactionID"`
	OwnerID               string            `json:"ownerID"`
	MemberID              *string           `json:"memberID,omitempty"`
	Type                  TransactionType   `json:"type"`
	Status                TransactionStatus `json:"status"`
	Amount                decimal.Decimal   `json:"amount"`
	Principal             decimal.Decimal   `json:"principal"`
	Balance               decimal.Decimal   `json:"balance"`
	InterestRate          decimal.Decimal   `json:"interestRate"`
	TotalInterest         decimal.Decimal   `json:"totalInterest"`
	LastInterestAppliedAt *time.Time        `json:"lastInterestAppliedAt,omitempty"`
	LastPaymentAt         *time.Time        `json:"lastPaymentAt,omitempty"`
	RelatedTransactionID  *string           `json:"relatedTransactionID,omitempty"`
	BeneficiaryName       string            `json:"beneficiaryName"`
	BeneficiaryKind       BeneficiaryKind   `json:"beneficiaryKind,omitempty"`
	FiscalYear            int               `json:"fiscalYear"`
	IsArchived            bool              `json:"isArchived"`
	AuditFields
}

// NewDeposit builds a pending DEPOSIT.
func NewDeposit(id, ownerID string, memberID *string, amount decimal.Decimal, beneficiaryName string, now time.Time) (Transaction, error) {
	if err := ValidatePositiveAmount("deposit amount", amount); err != nil {
		return Transaction{}, err
	}
	return Transaction{
		TransactionID:   id,
		OwnerID:         ownerID,
		MemberID:        memberID,
		Type:            Deposit,
		Status:          StatusPending,
		Amount:          RoundMoney(amount),
		BeneficiaryName: beneficiaryName,
		FiscalYear:      now.Year(),
		AuditFields:     NewAuditFields(ownerID, now),
	}, nil
}

// NewLoan builds a pending LOAN with the first month of interest already applied.
func NewLoan(id, ownerID string, memberID *string, principal decimal.Decimal, kind BeneficiaryKind, beneficiaryName string, now time.Time) (Transaction, error) {
	if err := ValidatePositiveAmount("loan principal", principal); err != nil {
		return Transaction{}, err
	}
	if !kind.IsValid() {
		return Transaction{}, fmt.Errorf("%w: unknown beneficiary kind %q", apperrors.ErrValidation, kind)
	}
	principal = RoundMoney(principal)
	rate := InterestRateFor(kind)
	initialInterest := RoundMoney(principal.Mul(rate))
	appliedAt := now
	return Transaction{
		TransactionID:         id,
		OwnerID:               ownerID,
		MemberID:              memberID,
		Type:                  Loan,
		Status:                StatusPending,
		Principal:             principal,
		Balance:               principal.Add(initialInterest),
		InterestRate:          rate,
		TotalInterest:         initialInterest,
		LastInterestAppliedAt: &appliedAt,
		BeneficiaryName:       beneficiaryName,
		BeneficiaryKind:       kind,
		FiscalYear:            now.Year(),
		AuditFields:           NewAuditFields(ownerID, now),
	}, nil
}

// NewPaymentRequest builds a pending PAYMENT against a loan. The loan balance is
// checked at settlement, not here.
func NewPaymentRequest(id, ownerID string, memberID *string, loanID string, amount decimal.Decimal, beneficiaryName string, now time.Time) (Transaction, error) {
	if err := ValidatePositiveAmount("payment amount", amount); err != nil {
		return Transaction{}, err
	}
	if loanID == "" {
		return Transaction{}, fmt.Errorf("%w: related loan ID is required", apperrors.ErrValidation)
	}
	related := loanID
	return Transaction{
		TransactionID:        id,
		OwnerID:              ownerID,
		MemberID:             memberID,
		Type:                 Payment,
		Status:               StatusPending,
		Amount:               RoundMoney(amount),
		RelatedTransactionID: &related,
		BeneficiaryName:      beneficiaryName,
		FiscalYear:           now.Year(),
		AuditFields:          NewAuditFields(ownerID, now),
	}, nil
}

// ValidateReviewTransition checks a direct review action (SetStatus).
// Payment approval and loan payoff are settlement side effects and are refused here.
func (t Transaction) ValidateReviewTransition(next TransactionStatus) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, next)
	}
	if t.IsArchived {
		return fmt.Errorf("%w: transaction %s is archived", apperrors.ErrInvalidState, t.TransactionID)
	}
	if t.Status.IsTerminal() {
		return fmt.Errorf("%w: %s is terminal", apperrors.ErrInvalidTransition, t.Status)
	}
	if t.Type == Payment && next == StatusApproved {
		return fmt.Errorf("%w: payments are approved through settlement", apperrors.ErrInvalidState)
	}
	if t.Status != StatusPending || (next != StatusApproved && next != StatusRejected) {
		return fmt.Errorf("%w: %s %s -> %s", apperrors.ErrInvalidTransition, t.Type, t.Status, next)
	}
	return nil
}

// DaysSince returns the whole days (rounded up) from 'from' to 'now'.
// A 'from' in the future yields 0.
func DaysSince(from, now time.Time) int {
	elapsed := now.Sub(from)
	if elapsed <= 0 {
		return 0
	}
	return int(math.Ceil(elapsed.Hours() / 24))
}

// InterestDue returns the monthly interest to add if the loan is active and a full
// period has passed since the last application.
func (t Transaction) InterestDue(now time.Time) (decimal.Decimal, bool) {
	if t.Type != Loan || t.Status != StatusApproved || t.LastInterestAppliedAt == nil {
		return decimal.Zero, false
	}
	if DaysSince(*t.LastInterestAppliedAt, now) < InterestPeriodDays {
		return decimal.Zero, false
	}
	return RoundMoney(t.Principal.Mul(t.InterestRate)), true
}

// Settlement is the outcome of applying an approved payment to a loan.
type Settlement struct {
	Loan    Transaction `json:"loan"`
	Payment Transaction `json:"payment"`
}

// Settle applies payment against loan and returns both records in their new state.
// It does not persist anything.
// ValidateSettleable checks that t is a pending, non-archived PAYMENT with a related loan.
// Stores call it before loading the loan so payment errors take precedence.
func (t Transaction) ValidateSettleable() error {
	if t.Type != Payment || t.Status != StatusPending {
		return fmt.Errorf("%w: transaction %s is %s %s, expected PENDING PAYMENT", apperrors.ErrInvalidState, t.TransactionID, t.Status, t.Type)
	}
	if t.IsArchived {
		return fmt.Errorf("%w: payment %s is archived", apperrors.ErrInvalidState, t.TransactionID)
	}
	if t.RelatedTransactionID == nil || *t.RelatedTransactionID == "" {
		return fmt.Errorf("%w: payment %s has no related loan", apperrors.ErrInvalidState, t.TransactionID)
	}
	return nil
}

func Settle(payment, loan Transaction, now time.Time) (Settlement, error) {
	if err := payment.ValidateSettleable(); err != nil {
		return Settlement{}, err
	}
	if loan.Type != Loan || loan.Status != StatusApproved {
		return Settlement{}, fmt.Errorf("%w: related transaction %s is %s %s, expected APPROVED LOAN", apperrors.ErrInvalidState, loan.TransactionID, loan.Status, loan.Type)
	}
	if payment.Amount.GreaterThan(loan.Balance) {
		return Settlement{}, fmt.Errorf("%w: payment %s exceeds balance %s", apperrors.ErrOverPayment, payment.Amount.String(), loan.Balance.String())
	}

	paidAt := now
	loan.Balance = loan.Balance.Sub(payment.Amount)
	loan.Status = StatusApproved
	if loan.Balance.IsZero() {
		loan.Status = StatusPaid
	}
	loan.LastPaymentAt = &paidAt
	loan.LastUpdatedAt = now

	payment.Status = StatusApproved
	payment.LastUpdatedAt = now
	return Settlement{Loan: loan, Payment: payment}, nil
}

// CashEffect is the change this entry makes to the fund's cash on hand.
// Loan interest is not cash until it is repaid through a payment.
func (t Transaction) CashEffect() decimal.Decimal {
	if !t.Status.IsSettled() {
		return decimal.Zero
	}
	switch t.Type {
	case Deposit, Payment:
		return t.Amount
	case Loan:
		return t.Principal.Neg()
	}
	return decimal.Zero
}
