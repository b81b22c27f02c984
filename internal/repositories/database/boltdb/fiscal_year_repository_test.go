package boltdb_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	"github.com/SscSPs/paluwagan_app/internal/repositories/database/boltdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func openProvider(t *testing.T) (*bolt.DB, func()) {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"), 0o600, nil)
	require.NoError(t, err)
	return db, func() { require.NoError(t, db.Close()) }
}

func TestFiscalYearRepository(t *testing.T) {
	db, closeDB := openProvider(t)
	defer closeDB()
	repos, err := boltdb.NewRepositoryProvider(db)
	require.NoError(t, err)
	repo := repos.FiscalYearRepo
	ctx := context.Background()

	_, err = repo.FindFiscalYear(ctx, 2025)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	first, err := domain.NewFiscalYearRecord(2025, dec("0"), "system", baseTime)
	require.NoError(t, err)
	stored, err := repo.CreateFiscalYearIfAbsent(ctx, first)
	require.NoError(t, err)
	assert.True(t, stored.StartingBalance.IsZero())

	update, err := domain.NewFiscalYearRecord(2025, dec("1500"), "admin-1", baseTime.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.UpsertFiscalYear(ctx, update))

	// A later lazy create must not clobber the configured balance.
	stored, err = repo.CreateFiscalYearIfAbsent(ctx, first)
	require.NoError(t, err)
	assert.True(t, stored.StartingBalance.Equal(dec("1500")))
	assert.Equal(t, "admin-1", stored.UpdatedBy)
}

func TestLinkedMemberRepository(t *testing.T) {
	db, closeDB := openProvider(t)
	defer closeDB()
	repos, err := boltdb.NewRepositoryProvider(db)
	require.NoError(t, err)
	repo := repos.LinkedMemberRepo
	ctx := context.Background()

	older, _ := domain.NewLinkedMember("m-2", "parent-1", "Ana", "", baseTime)
	newer, _ := domain.NewLinkedMember("m-1", "parent-1", "Ben", "Son", baseTime.Add(time.Minute))
	other, _ := domain.NewLinkedMember("m-3", "parent-10", "Cara", "", baseTime)
	for _, m := range []domain.LinkedMember{newer, older, other} {
		require.NoError(t, repo.SaveLinkedMember(ctx, m))
	}
	assert.ErrorIs(t, repo.SaveLinkedMember(ctx, older), apperrors.ErrConflict)

	members, err := repo.ListLinkedMembersByParent(ctx, "parent-1")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "m-2", members[0].MemberID)
	assert.Equal(t, "m-1", members[1].MemberID)

	reviewed, err := older.Review(true, "admin-1", baseTime.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.UpdateLinkedMemberReview(ctx, reviewed))
	assert.ErrorIs(t, repo.UpdateLinkedMemberReview(ctx, reviewed), apperrors.ErrConflict)

	got, err := repo.FindLinkedMember(ctx, "parent-1", "m-2")
	require.NoError(t, err)
	assert.Equal(t, domain.MemberApproved, got.Status)
	require.NotNil(t, got.ReviewedBy)
	assert.Equal(t, "admin-1", *got.ReviewedBy)

	pending, err := repo.ListLinkedMembersByStatus(ctx, domain.MemberPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "m-3", pending[0].MemberID)

	_, err = repo.FindLinkedMember(ctx, "parent-10", "m-2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
