package dto

import (
	"time"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
)

// AddLinkedMemberRequest defines the data needed to link a member to an owner.
type AddLinkedMemberRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Relationship string `json:"relationship" binding:"max=50"` // Optional, defaults to Family
}

// ReviewLinkedMemberRequest defines an admin decision on a linked member.
type ReviewLinkedMemberRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

// LinkedMemberResponse defines the data returned for a linked member.
type LinkedMemberResponse struct {
	MemberID     string              `json:"memberID"`
	ParentID     string              `json:"parentID"`
	Name         string              `json:"name"`
	Relationship string              `json:"relationship"`
	Status       domain.MemberStatus `json:"status"`
	ReviewedBy   *string             `json:"reviewedBy,omitempty"`
	ReviewedAt   *time.Time          `json:"reviewedAt,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ToLinkedMemberResponse converts a domain.LinkedMember to LinkedMemberResponse DTO.
func ToLinkedMemberResponse(m *domain.LinkedMember) LinkedMemberResponse {
	return LinkedMemberResponse(*m)
}

// ToLinkedMemberResponses converts a slice of domain.LinkedMember to []LinkedMemberResponse.
func ToLinkedMemberResponses(members []domain.LinkedMember) []LinkedMemberResponse {
	responses := make([]LinkedMemberResponse, len(members))
	for i, m := range members {
		responses[i] = ToLinkedMemberResponse(&m)
	}
	return responses
}
