package domain

import (
	"fmt"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places (centavos) every stored amount is rounded to.
const MoneyScale int32 = 2

// RoundMoney rounds an amount to MoneyScale places.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// IsWholeCentavos reports whether d has no value beyond MoneyScale places.
// Trailing zeros such as 10.500 are accepted.
func IsWholeCentavos(d decimal.Decimal) bool {
	return d.Equal(RoundMoney(d))
}

// ValidatePositiveAmount rejects amounts that are not strictly positive or that carry
// fractions of a centavo. Input is never rounded into validity.
func ValidatePositiveAmount(what string, d decimal.Decimal) error {
	if !IsWholeCentavos(d) {
		return fmt.Errorf("%w: %s must have at most %d decimal places, got %s", apperrors.ErrInvalidAmount, what, MoneyScale, d.String())
	}
	if !d.IsPositive() {
		return fmt.Errorf("%w: %s must be positive, got %s", apperrors.ErrInvalidAmount, what, d.String())
	}
	return nil
}
