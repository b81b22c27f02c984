package repositories

import (
	"context"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
)

// LinkedMemberReader defines read operations for linked members
type LinkedMemberReader interface {
	// FindLinkedMember retrieves one member of a parent. Returns apperrors.ErrNotFound if absent.
	FindLinkedMember(ctx context.Context, parentID, memberID string) (*domain.LinkedMember, error)

	// ListLinkedMembersByParent returns a parent's members, oldest first.
	ListLinkedMembersByParent(ctx context.Context, parentID string) ([]domain.LinkedMember, error)

	// ListLinkedMembersByStatus returns members in a status across all parents, oldest first.
	ListLinkedMembersByStatus(ctx context.Context, status domain.MemberStatus) ([]domain.LinkedMember, error)
}

// LinkedMemberWriter defines write operations for linked members
type LinkedMemberWriter interface {
	// SaveLinkedMember persists a new member.
	SaveLinkedMember(ctx context.Context, member domain.LinkedMember) error

	// UpdateLinkedMemberReview stores a review decision if the member is still pending.
	// Returns apperrors.ErrConflict otherwise.
	UpdateLinkedMemberReview(ctx context.Context, member domain.LinkedMember) error
}

// LinkedMemberRepositoryFacade combines all linked member repository interfaces
type LinkedMemberRepositoryFacade interface {
	LinkedMemberReader
	LinkedMemberWriter
}
