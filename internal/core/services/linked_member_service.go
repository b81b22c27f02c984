package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/paluwagan_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/paluwagan_app/internal/core/ports/services"
	"github.com/SscSPs/paluwagan_app/internal/dto"
	"github.com/SscSPs/paluwagan_app/internal/platform/clock"
)

type linkedMemberService struct {
	BaseService
	memberRepo portsrepo.LinkedMemberRepositoryFacade
}

// NewLinkedMemberService creates a new LinkedMemberService.
func NewLinkedMemberService(memberRepo portsrepo.LinkedMemberRepositoryFacade, clk clock.Clock) portssvc.LinkedMemberSvc {
	return &linkedMemberService{
		BaseService: newBaseService(clk),
		memberRepo:  memberRepo,
	}
}

var _ portssvc.LinkedMemberSvc = (*linkedMemberService)(nil)

func (s *linkedMemberService) AddLinkedMember(ctx context.Context, parentID string, req dto.AddLinkedMemberRequest) (*domain.LinkedMember, error) {
	member, err := domain.NewLinkedMember(uuid.NewString(), parentID, req.Name, req.Relationship, s.Now())
	if err != nil {
		return nil, err
	}
	if err := s.memberRepo.SaveLinkedMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to save linked member", slog.String("parent_id", parentID))
		return nil, err
	}
	s.LogInfo(ctx, "Linked member added", slog.String("member_id", member.MemberID), slog.String("parent_id", parentID))
	return &member, nil
}

func (s *linkedMemberService) ListLinkedMembers(ctx context.Context, parentID string) ([]domain.LinkedMember, error) {
	members, err := s.memberRepo.ListLinkedMembersByParent(ctx, parentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list linked members", slog.String("parent_id", parentID))
		return nil, err
	}
	return members, nil
}

func (s *linkedMemberService) ListPendingMembers(ctx context.Context) ([]domain.LinkedMember, error) {
	members, err := s.memberRepo.ListLinkedMembersByStatus(ctx, domain.MemberPending)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pending members")
		return nil, err
	}
	return members, nil
}

func (s *linkedMemberService) ReviewLinkedMember(ctx context.Context, parentID, memberID string, approve bool, adminID string) (*domain.LinkedMember, error) {
	member, err := s.memberRepo.FindLinkedMember(ctx, parentID, memberID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load linked member", slog.String("member_id", memberID))
		}
		return nil, err
	}
	reviewed, err := member.Review(approve, adminID, s.Now())
	if err != nil {
		return nil, err
	}
	if err := s.memberRepo.UpdateLinkedMemberReview(ctx, reviewed); err != nil {
		s.LogError(ctx, err, "Failed to store member review", slog.String("member_id", memberID))
		return nil, err
	}
	s.LogInfo(ctx, "Linked member reviewed",
		slog.String("member_id", memberID),
		slog.String("status", string(reviewed.Status)),
		slog.String("admin_id", adminID))
	return &reviewed, nil
}
