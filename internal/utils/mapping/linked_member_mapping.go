package mapping

import (
	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	"github.com/SscSPs/paluwagan_app/internal/models"
)

// ToModelLinkedMember converts a domain LinkedMember to a model LinkedMember
func ToModelLinkedMember(d domain.LinkedMember) models.LinkedMember {
	return models.LinkedMember{
		MemberID:     d.MemberID,
		ParentID:     d.ParentID,
		Name:         d.Name,
		Relationship: d.Relationship,
		Status:       string(d.Status),
		ReviewedBy:   d.ReviewedBy,
		ReviewedAt:   d.ReviewedAt,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainLinkedMember converts a model LinkedMember to a domain LinkedMember
func ToDomainLinkedMember(m models.LinkedMember) domain.LinkedMember {
	return domain.LinkedMember{
		MemberID:     m.MemberID,
		ParentID:     m.ParentID,
		Name:         m.Name,
		Relationship: m.Relationship,
		Status:       domain.MemberStatus(m.Status),
		ReviewedBy:   m.ReviewedBy,
		ReviewedAt:   m.ReviewedAt,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainLinkedMemberSlice converts a slice of model LinkedMembers to a slice of domain LinkedMembers
func ToDomainLinkedMemberSlice(ms []models.LinkedMember) []domain.LinkedMember {
	ds := make([]domain.LinkedMember, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLinkedMember(m)
	}
	return ds
}
