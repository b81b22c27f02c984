package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
)

// MemberStatus is the review state of a linked member.
type MemberStatus string

const (
	MemberPending  MemberStatus = "pending"
	MemberApproved MemberStatus = "approved"
	MemberRejected MemberStatus = "rejected"
)

// DefaultRelationship is used when the owner does not say how the member is related.
const DefaultRelationship = "Family"

// LinkedMember is a sub-account (usually a relative) that transacts under an owner.
type LinkedMember struct {
	MemberID     string       `json:"memberID"`
	ParentID     string       `json:"parentID"`
	Name         string       `json:"name"`
	Relationship string       `json:"relationship"`
	Status       MemberStatus `json:"status"`
	ReviewedBy   *string      `json:"reviewedBy,omitempty"`
	ReviewedAt   *time.Time   `json:"reviewedAt,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// NewLinkedMember builds a pending member under parentID.
func NewLinkedMember(id, parentID, name, relationship string, now time.Time) (LinkedMember, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return LinkedMember{}, fmt.Errorf("%w: member name is required", apperrors.ErrValidation)
	}
	relationship = strings.TrimSpace(relationship)
	if relationship == "" {
		relationship = DefaultRelationship
	}
	return LinkedMember{
		MemberID:     id,
		ParentID:     parentID,
		Name:         name,
		Relationship: relationship,
		Status:       MemberPending,
		CreatedAt:    now,
	}, nil
}

// Review returns the member after an admin decision. Only pending members can be reviewed.
func (m LinkedMember) Review(approve bool, adminID string, now time.Time) (LinkedMember, error) {
	if m.Status != MemberPending {
		return LinkedMember{}, fmt.Errorf("%w: member %s is already %s", apperrors.ErrInvalidTransition, m.MemberID, m.Status)
	}
	m.Status = MemberRejected
	if approve {
		m.Status = MemberApproved
	}
	reviewedAt := now
	m.ReviewedBy = &adminID
	m.ReviewedAt = &reviewedAt
	return m, nil
}
