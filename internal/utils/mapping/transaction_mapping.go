package mapping

import (
	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	"github.com/SscSPs/paluwagan_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	var kind *string
	if d.BeneficiaryKind != "" {
		k := string(d.BeneficiaryKind)
		kind = &k
	}
	return models.Transaction{
		TransactionID:         d.TransactionID,
		OwnerID:               d.OwnerID,
		MemberID:              d.MemberID,
		Type:                  string(d.Type),
		Status:                string(d.Status),
		Amount:                d.Amount,
		Principal:             d.Principal,
		Balance:               d.Balance,
		InterestRate:          d.InterestRate,
		TotalInterest:         d.TotalInterest,
		LastInterestAppliedAt: d.LastInterestAppliedAt,
		LastPaymentAt:         d.LastPaymentAt,
		RelatedTransactionID:  d.RelatedTransactionID,
		BeneficiaryName:       d.BeneficiaryName,
		BeneficiaryKind:       kind,
		FiscalYear:            d.FiscalYear,
		IsArchived:            d.IsArchived,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	var kind domain.BeneficiaryKind
	if m.BeneficiaryKind != nil {
		kind = domain.BeneficiaryKind(*m.BeneficiaryKind)
	}
	return domain.Transaction{
		TransactionID:         m.TransactionID,
		OwnerID:               m.OwnerID,
		MemberID:              m.MemberID,
		Type:                  domain.TransactionType(m.Type),
		Status:                domain.TransactionStatus(m.Status),
		Amount:                m.Amount,
		Principal:             m.Principal,
		Balance:               m.Balance,
		InterestRate:          m.InterestRate,
		TotalInterest:         m.TotalInterest,
		LastInterestAppliedAt: m.LastInterestAppliedAt,
		LastPaymentAt:         m.LastPaymentAt,
		RelatedTransactionID:  m.RelatedTransactionID,
		BeneficiaryName:       m.BeneficiaryName,
		BeneficiaryKind:       kind,
		FiscalYear:            m.FiscalYear,
		IsArchived:            m.IsArchived,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
