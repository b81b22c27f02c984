package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	MinFiscalYear = 1900
	MaxFiscalYear = 9999
)

// FiscalYearRecord holds the opening cash balance of a fiscal year.
type FiscalYearRecord struct {
	Year            int             `json:"year"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	UpdatedBy       string          `json:"updatedBy"`
}

// ValidateFiscalYear rejects years outside the supported range.
func ValidateFiscalYear(year int) error {
	if year < MinFiscalYear || year > MaxFiscalYear {
		return fmt.Errorf("%w: fiscal year %d out of range %d..%d", apperrors.ErrValidation, year, MinFiscalYear, MaxFiscalYear)
	}
	return nil
}

// NewFiscalYearRecord builds a starting-balance record. Negative balances are rejected.
func NewFiscalYearRecord(year int, startingBalance decimal.Decimal, userID string, now time.Time) (FiscalYearRecord, error) {
	if err := ValidateFiscalYear(year); err != nil {
		return FiscalYearRecord{}, err
	}
	if !IsWholeCentavos(startingBalance) {
		return FiscalYearRecord{}, fmt.Errorf("%w: starting balance must have at most %d decimal places, got %s", apperrors.ErrInvalidAmount, MoneyScale, startingBalance.String())
	}
	if startingBalance.IsNegative() {
		return FiscalYearRecord{}, fmt.Errorf("%w: starting balance must not be negative, got %s", apperrors.ErrInvalidAmount, startingBalance.String())
	}
	return FiscalYearRecord{
		Year:            year,
		StartingBalance: RoundMoney(startingBalance),
		UpdatedAt:       now,
		UpdatedBy:       userID,
	}, nil
}
