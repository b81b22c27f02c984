package mapping

import (
	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	"github.com/SscSPs/paluwagan_app/internal/models"
)

// ToModelFiscalYear converts a domain FiscalYearRecord to a model FiscalYear
func ToModelFiscalYear(d domain.FiscalYearRecord) models.FiscalYear {
	return models.FiscalYear{
		Year:            d.Year,
		StartingBalance: d.StartingBalance,
		UpdatedAt:       d.UpdatedAt,
		UpdatedBy:       d.UpdatedBy,
	}
}

// ToDomainFiscalYear converts a model FiscalYear to a domain FiscalYearRecord
func ToDomainFiscalYear(m models.FiscalYear) domain.FiscalYearRecord {
	return domain.FiscalYearRecord{
		Year:            m.Year,
		StartingBalance: m.StartingBalance,
		UpdatedAt:       m.UpdatedAt,
		UpdatedBy:       m.UpdatedBy,
	}
}
