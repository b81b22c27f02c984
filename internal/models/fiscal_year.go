package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FiscalYear is the persisted starting balance of a year.
type FiscalYear struct {
	Year            int             `db:"year" json:"year"`
	StartingBalance decimal.Decimal `db:"starting_balance" json:"startingBalance"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updatedAt"`
	UpdatedBy       string          `db:"updated_by" json:"updatedBy"`
}
