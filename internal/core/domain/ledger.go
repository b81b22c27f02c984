package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TransactionFilter narrows a transaction listing. Nil fields do not filter.
type TransactionFilter struct {
	OwnerID    *string
	MemberID   *string
	Type       *TransactionType
	Status     *TransactionStatus
	FiscalYear *int
	IsArchived *bool
}

// Matches reports whether t satisfies every set field of f.
func (f TransactionFilter) Matches(t Transaction) bool {
	if f.OwnerID != nil && t.OwnerID != *f.OwnerID {
		return false
	}
	if f.MemberID != nil && (t.MemberID == nil || *t.MemberID != *f.MemberID) {
		return false
	}
	if f.Type != nil && t.Type != *f.Type {
		return false
	}
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.FiscalYear != nil && t.FiscalYear != *f.FiscalYear {
		return false
	}
	if f.IsArchived != nil && t.IsArchived != *f.IsArchived {
		return false
	}
	return true
}

// RecordFailure is a per-record error reported by a batch operation.
type RecordFailure struct {
	TransactionID string `json:"transactionID"`
	Error         string `json:"error"`
}

// BatchResult summarizes an interest sweep.
type BatchResult struct {
	Processed int             `json:"processed"`
	Updated   int             `json:"updated"`
	Skipped   int             `json:"skipped"`
	Failures  []RecordFailure `json:"failures"`
}

// Success reports whether every record was handled without error.
func (r BatchResult) Success() bool {
	return len(r.Failures) == 0
}

// ArchiveResult is the outcome of archiving a fiscal year.
type ArchiveResult struct {
	Year          int   `json:"year"`
	Count         int64 `json:"count"`
	IsCurrentYear bool  `json:"isCurrentYear"`
}

// LedgerEntry is a transaction with the cash balance right after it.
type LedgerEntry struct {
	Transaction    Transaction     `json:"transaction"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// RunningBalanceReport is the replay of one fiscal year.
type RunningBalanceReport struct {
	Year            int             `json:"year"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
	EndingBalance   decimal.Decimal `json:"endingBalance"`
	Entries         []LedgerEntry   `json:"entries"`
}

// SortChronologically orders transactions by creation time, then id.
func SortChronologically(txns []Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		a, b := txns[i], txns[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.TransactionID < b.TransactionID
	})
}

// ReplayLedger annotates txns, which must already be in chronological order,
// with the running cash balance starting from start.
func ReplayLedger(start decimal.Decimal, txns []Transaction) ([]LedgerEntry, decimal.Decimal) {
	entries := make([]LedgerEntry, 0, len(txns))
	running := start
	for _, t := range txns {
		running = running.Add(t.CashEffect())
		entries = append(entries, LedgerEntry{Transaction: t, RunningBalance: running})
	}
	return entries, running
}

// OwnerSummary is the dashboard total for one owner (or one of their members).
type OwnerSummary struct {
	OwnerID          string          `json:"ownerID"`
	MemberID         *string         `json:"memberID,omitempty"`
	FiscalYear       *int            `json:"fiscalYear,omitempty"`
	TotalSavings     decimal.Decimal `json:"totalSavings"`
	OutstandingLoans decimal.Decimal `json:"outstandingLoans"`
	PendingCount     int             `json:"pendingCount"`
}

// Summarize folds txns into an OwnerSummary.
func Summarize(ownerID string, memberID *string, fiscalYear *int, txns []Transaction) OwnerSummary {
	s := OwnerSummary{
		OwnerID:          ownerID,
		MemberID:         memberID,
		FiscalYear:       fiscalYear,
		TotalSavings:     decimal.Zero,
		OutstandingLoans: decimal.Zero,
	}
	for _, t := range txns {
		if t.Status == StatusPending {
			s.PendingCount++
			continue
		}
		switch {
		case t.Type == Deposit && t.Status == StatusApproved:
			s.TotalSavings = s.TotalSavings.Add(t.Amount)
		case t.Type == Loan && t.Status == StatusApproved:
			s.OutstandingLoans = s.OutstandingLoans.Add(t.Balance)
		}
	}
	return s
}
