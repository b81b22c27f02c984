package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/paluwagan_app/internal/core/ports/repositories"
	"github.com/SscSPs/paluwagan_app/internal/models"
	"github.com/SscSPs/paluwagan_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const linkedMemberColumns = `member_id, parent_id, name, relationship, status, reviewed_by, reviewed_at, created_at`

// PgxLinkedMemberRepository stores linked members.
type PgxLinkedMemberRepository struct {
	BaseRepository
}

func newPgxLinkedMemberRepository(pool *pgxpool.Pool) portsrepo.LinkedMemberRepositoryFacade {
	return &PgxLinkedMemberRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LinkedMemberRepositoryFacade = (*PgxLinkedMemberRepository)(nil)

func scanLinkedMember(row pgx.Row) (models.LinkedMember, error) {
	var m models.LinkedMember
	err := row.Scan(&m.MemberID, &m.ParentID, &m.Name, &m.Relationship, &m.Status, &m.ReviewedBy, &m.ReviewedAt, &m.CreatedAt)
	return m, err
}

func (r *PgxLinkedMemberRepository) listWhere(ctx context.Context, where string, arg any) ([]domain.LinkedMember, error) {
	query := `SELECT ` + linkedMemberColumns + ` FROM linked_members WHERE ` + where + ` ORDER BY created_at, member_id;`
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query linked members", err)
	}
	defer rows.Close()

	var ms []models.LinkedMember
	for rows.Next() {
		m, err := scanLinkedMember(rows)
		if err != nil {
			return nil, apperrors.NewStoreError("failed to scan linked member row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("error iterating linked member rows", err)
	}
	return mapping.ToDomainLinkedMemberSlice(ms), nil
}

// FindLinkedMember retrieves one member of a parent.
func (r *PgxLinkedMemberRepository) FindLinkedMember(ctx context.Context, parentID, memberID string) (*domain.LinkedMember, error) {
	query := `SELECT ` + linkedMemberColumns + ` FROM linked_members WHERE parent_id = $1 AND member_id = $2;`
	m, err := scanLinkedMember(r.Pool.QueryRow(ctx, query, parentID, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: linked member %s", apperrors.ErrNotFound, memberID)
		}
		return nil, apperrors.NewStoreError("failed to find linked member "+memberID, err)
	}
	d := mapping.ToDomainLinkedMember(m)
	return &d, nil
}

// ListLinkedMembersByParent returns a parent's members, oldest first.
func (r *PgxLinkedMemberRepository) ListLinkedMembersByParent(ctx context.Context, parentID string) ([]domain.LinkedMember, error) {
	return r.listWhere(ctx, "parent_id = $1", parentID)
}

// ListLinkedMembersByStatus returns members in a status across all parents, oldest first.
func (r *PgxLinkedMemberRepository) ListLinkedMembersByStatus(ctx context.Context, status domain.MemberStatus) ([]domain.LinkedMember, error) {
	return r.listWhere(ctx, "status = $1", string(status))
}

// SaveLinkedMember inserts a new member.
func (r *PgxLinkedMemberRepository) SaveLinkedMember(ctx context.Context, member domain.LinkedMember) error {
	m := mapping.ToModelLinkedMember(member)
	query := `
		INSERT INTO linked_members (` + linkedMemberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query, m.MemberID, m.ParentID, m.Name, m.Relationship, m.Status, m.ReviewedBy, m.ReviewedAt, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: linked member %s already exists", apperrors.ErrConflict, m.MemberID)
		}
		return apperrors.NewStoreError("failed to save linked member "+m.MemberID, err)
	}
	return nil
}

// UpdateLinkedMemberReview stores a review decision if the member is still pending.
func (r *PgxLinkedMemberRepository) UpdateLinkedMemberReview(ctx context.Context, member domain.LinkedMember) error {
	m := mapping.ToModelLinkedMember(member)
	query := `
		UPDATE linked_members
		SET status = $3, reviewed_by = $4, reviewed_at = $5
		WHERE parent_id = $1 AND member_id = $2 AND status = 'pending';
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.ParentID, m.MemberID, m.Status, m.ReviewedBy, m.ReviewedAt)
	if err != nil {
		return apperrors.NewStoreError("failed to update linked member "+m.MemberID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: linked member %s is no longer pending", apperrors.ErrConflict, m.MemberID)
	}
	return nil
}
