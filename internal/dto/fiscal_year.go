package dto

import (
	"time"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetStartingBalanceRequest defines the opening balance an admin records for a year.
type SetStartingBalanceRequest struct {
	StartingBalance decimal.Decimal `json:"startingBalance" swaggertype:"string" example:"15000.00"`
}

// FiscalYearResponse defines the data returned for a fiscal year record.
type FiscalYearResponse struct {
	Year            int             `json:"year"`
	StartingBalance decimal.Decimal `json:"startingBalance" swaggertype:"string"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	UpdatedBy       string          `json:"updatedBy,omitempty"`
}

// ToFiscalYearResponse converts a domain.FiscalYearRecord to FiscalYearResponse DTO.
func ToFiscalYearResponse(rec *domain.FiscalYearRecord) FiscalYearResponse {
	return FiscalYearResponse{
		Year:            rec.Year,
		StartingBalance: rec.StartingBalance,
		UpdatedAt:       rec.UpdatedAt,
		UpdatedBy:       rec.UpdatedBy,
	}
}

// ArchiveResponse reports a fiscal year archival.
type ArchiveResponse struct {
	Success       bool   `json:"success"`
	Year          int    `json:"year"`
	Count         int64  `json:"count"`
	IsCurrentYear bool   `json:"isCurrentYear"`
	Warning       string `json:"warning,omitempty"`
}

// ToArchiveResponse converts a domain.ArchiveResult to ArchiveResponse DTO.
func ToArchiveResponse(r domain.ArchiveResult) ArchiveResponse {
	resp := ArchiveResponse{
		Success:       true,
		Year:          r.Year,
		Count:         r.Count,
		IsCurrentYear: r.IsCurrentYear,
	}
	if r.IsCurrentYear {
		resp.Warning = "the current fiscal year was archived; new transactions are unaffected"
	}
	return resp
}

// LedgerEntryResponse is one row of a running balance report.
type LedgerEntryResponse struct {
	Transaction    TransactionResponse `json:"transaction"`
	RunningBalance decimal.Decimal     `json:"runningBalance" swaggertype:"string"`
}

// RunningBalanceResponse is the replay of a fiscal year.
type RunningBalanceResponse struct {
	Year            int                   `json:"year"`
	StartingBalance decimal.Decimal       `json:"startingBalance" swaggertype:"string"`
	EndingBalance   decimal.Decimal       `json:"endingBalance" swaggertype:"string"`
	Entries         []LedgerEntryResponse `json:"entries"`
}

// ToRunningBalanceResponse converts a domain.RunningBalanceReport to RunningBalanceResponse DTO.
func ToRunningBalanceResponse(r *domain.RunningBalanceReport) RunningBalanceResponse {
	entries := make([]LedgerEntryResponse, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = LedgerEntryResponse{
			Transaction:    ToTransactionResponse(&e.Transaction),
			RunningBalance: e.RunningBalance,
		}
	}
	return RunningBalanceResponse{
		Year:            r.Year,
		StartingBalance: r.StartingBalance,
		EndingBalance:   r.EndingBalance,
		Entries:         entries,
	}
}
