package boltdb

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/paluwagan_app/internal/core/ports/repositories"
	"github.com/SscSPs/paluwagan_app/internal/models"
	"github.com/SscSPs/paluwagan_app/internal/utils/mapping"
	bolt "go.etcd.io/bbolt"
)

// BoltLinkedMemberRepository stores linked members keyed by parentID/memberID.
type BoltLinkedMemberRepository struct {
	store *store
}

var _ portsrepo.LinkedMemberRepositoryFacade = (*BoltLinkedMemberRepository)(nil)

func memberKey(parentID, memberID string) string {
	return parentID + "/" + memberID
}

func sortMembers(ms []domain.LinkedMember) {
	sort.Slice(ms, func(i, j int) bool {
		if !ms[i].CreatedAt.Equal(ms[j].CreatedAt) {
			return ms[i].CreatedAt.Before(ms[j].CreatedAt)
		}
		return ms[i].MemberID < ms[j].MemberID
	})
}

func (r *BoltLinkedMemberRepository) list(ctx context.Context, prefix []byte, keep func(models.LinkedMember) bool) ([]domain.LinkedMember, error) {
	var out []domain.LinkedMember
	err := r.store.view(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, BucketLinkedMembers)
		if err != nil {
			return err
		}
		return forEachJSON(b, prefix, func(_ []byte, m models.LinkedMember) error {
			if keep(m) {
				out = append(out, mapping.ToDomainLinkedMember(m))
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortMembers(out)
	return out, nil
}

// FindLinkedMember retrieves one member of a parent.
func (r *BoltLinkedMemberRepository) FindLinkedMember(ctx context.Context, parentID, memberID string) (*domain.LinkedMember, error) {
	var member *domain.LinkedMember
	err := r.store.view(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, BucketLinkedMembers)
		if err != nil {
			return err
		}
		var m models.LinkedMember
		found, err := getJSON(b, memberKey(parentID, memberID), &m)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: linked member %s", apperrors.ErrNotFound, memberID)
		}
		d := mapping.ToDomainLinkedMember(m)
		member = &d
		return nil
	})
	return member, err
}

// ListLinkedMembersByParent returns a parent's members, oldest first.
func (r *BoltLinkedMemberRepository) ListLinkedMembersByParent(ctx context.Context, parentID string) ([]domain.LinkedMember, error) {
	return r.list(ctx, []byte(parentID+"/"), func(models.LinkedMember) bool { return true })
}

// ListLinkedMembersByStatus returns members in a status across all parents, oldest first.
func (r *BoltLinkedMemberRepository) ListLinkedMembersByStatus(ctx context.Context, status domain.MemberStatus) ([]domain.LinkedMember, error) {
	return r.list(ctx, nil, func(m models.LinkedMember) bool { return m.Status == string(status) })
}

// SaveLinkedMember inserts a new member.
func (r *BoltLinkedMemberRepository) SaveLinkedMember(ctx context.Context, member domain.LinkedMember) error {
	return r.store.update(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, BucketLinkedMembers)
		if err != nil {
			return err
		}
		key := memberKey(member.ParentID, member.MemberID)
		if b.Get([]byte(key)) != nil {
			return fmt.Errorf("%w: linked member %s already exists", apperrors.ErrConflict, member.MemberID)
		}
		return putJSON(b, key, mapping.ToModelLinkedMember(member))
	})
}

// UpdateLinkedMemberReview stores a review decision if the member is still pending.
func (r *BoltLinkedMemberRepository) UpdateLinkedMemberReview(ctx context.Context, member domain.LinkedMember) error {
	return r.store.update(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, BucketLinkedMembers)
		if err != nil {
			return err
		}
		key := memberKey(member.ParentID, member.MemberID)
		var current models.LinkedMember
		found, err := getJSON(b, key, &current)
		if err != nil {
			return err
		}
		if !found || current.Status != string(domain.MemberPending) {
			return fmt.Errorf("%w: linked member %s is no longer pending", apperrors.ErrConflict, member.MemberID)
		}
		current.Status = string(member.Status)
		current.ReviewedBy = member.ReviewedBy
		current.ReviewedAt = member.ReviewedAt
		return putJSON(b, key, current)
	})
}
