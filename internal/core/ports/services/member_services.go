package services

import (
	"context"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	"github.com/SscSPs/paluwagan_app/internal/dto"
)

// LinkedMemberSvc manages sub-accounts under an owner
type LinkedMemberSvc interface {
	AddLinkedMember(ctx context.Context, parentID string, req dto.AddLinkedMemberRequest) (*domain.LinkedMember, error)
	ListLinkedMembers(ctx context.Context, parentID string) ([]domain.LinkedMember, error)
	ListPendingMembers(ctx context.Context) ([]domain.LinkedMember, error)
	ReviewLinkedMember(ctx context.Context, parentID, memberID string, approve bool, adminID string) (*domain.LinkedMember, error)
}
