package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/paluwagan_app/internal/core/ports/repositories"
	"github.com/SscSPs/paluwagan_app/internal/models"
	"github.com/SscSPs/paluwagan_app/internal/utils/mapping"
	"github.com/SscSPs/paluwagan_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const transactionColumns = `transaction_id, owner_id, member_id, type, status, amount, principal, balance,
		interest_rate, total_interest, last_interest_applied_at, last_payment_at, related_transaction_id,
		beneficiary_name, beneficiary_kind, fiscal_year, is_archived,
		created_at, created_by, last_updated_at, last_updated_by`

// PgxTransactionRepository stores ledger transactions in PostgreSQL.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.OwnerID,
		&m.MemberID,
		&m.Type,
		&m.Status,
		&m.Amount,
		&m.Principal,
		&m.Balance,
		&m.InterestRate,
		&m.TotalInterest,
		&m.LastInterestAppliedAt,
		&m.LastPaymentAt,
		&m.RelatedTransactionID,
		&m.BeneficiaryName,
		&m.BeneficiaryKind,
		&m.FiscalYear,
		&m.IsArchived,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	defer rows.Close()
	var out []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// filterClauses turns a filter into WHERE conditions, numbering placeholders after args.
func filterClauses(filter domain.TransactionFilter, args []any) ([]string, []any) {
	var clauses []string
	add := func(column string, value any) {
		args = append(args, value)
		clauses = append(clauses, column+" = $"+strconv.Itoa(len(args)))
	}
	if filter.OwnerID != nil {
		add("owner_id", *filter.OwnerID)
	}
	if filter.MemberID != nil {
		add("member_id", *filter.MemberID)
	}
	if filter.Type != nil {
		add("type", string(*filter.Type))
	}
	if filter.Status != nil {
		add("status", string(*filter.Status))
	}
	if filter.FiscalYear != nil {
		add("fiscal_year", *filter.FiscalYear)
	}
	if filter.IsArchived != nil {
		add("is_archived", *filter.IsArchived)
	}
	return clauses, args
}

func whereSQL(clauses []string) string {
	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(clauses, " AND ")
}

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.OwnerID,
		m.MemberID,
		m.Type,
		m.Status,
		m.Amount,
		m.Principal,
		m.Balance,
		m.InterestRate,
		m.TotalInterest,
		m.LastInterestAppliedAt,
		m.LastPaymentAt,
		m.RelatedTransactionID,
		m.BeneficiaryName,
		m.BeneficiaryKind,
		m.FiscalYear,
		m.IsArchived,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrConflict, m.TransactionID)
		}
		return apperrors.NewStoreError("failed to save transaction "+m.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) findByID(ctx context.Context, q dbtx, transactionID string, forUpdate bool) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	m, err := scanTransaction(q.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, apperrors.NewStoreError("failed to find transaction "+transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return r.findByID(ctx, r.Pool, transactionID, false)
}

// FindTransactions returns every transaction matching the filter.
func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	clauses, args := filterClauses(filter, nil)
	query := `SELECT ` + transactionColumns + ` FROM transactions` + whereSQL(clauses) + ` ORDER BY transaction_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query transactions", err)
	}
	ms, err := collectTransactions(rows)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to scan transaction rows", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// ListTransactions returns a newest-first page keyed on (created_at, transaction_id).
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	limit = pagination.ClampLimit(limit)
	// One extra row tells us whether another page exists.
	fetchLimit := limit + 1

	clauses, args := filterClauses(filter, nil)
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		args = append(args, cursor.CreatedAt, cursor.ID)
		clauses = append(clauses, "(created_at, transaction_id) < ($"+strconv.Itoa(len(args)-1)+", $"+strconv.Itoa(len(args))+")")
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions` + whereSQL(clauses) +
		` ORDER BY created_at DESC, transaction_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewStoreError("failed to list transactions", err)
	}
	ms, err := collectTransactions(rows)
	if err != nil {
		return nil, nil, apperrors.NewStoreError("failed to scan transaction rows", err)
	}

	var nextTokenVal *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[limit-1]
		token := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.TransactionID})
		nextTokenVal = &token
	}
	return mapping.ToDomainTransactionSlice(ms), nextTokenVal, nil
}

// UpdateTransactionStatus moves a non-archived transaction from one status to another.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, from, to domain.TransactionStatus, userID string, now time.Time) error {
	query := `
		UPDATE transactions
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE transaction_id = $1 AND status = $2 AND is_archived = FALSE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, string(from), string(to), now, userID)
	if err != nil {
		return apperrors.NewStoreError("failed to update status of transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM transactions WHERE transaction_id = $1);`, transactionID).Scan(&exists); err != nil {
		return apperrors.NewStoreError("failed to check transaction "+transactionID, err)
	}
	if !exists {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return fmt.Errorf("%w: transaction %s is no longer %s", apperrors.ErrConflict, transactionID, from)
}

// ApplyInterest adds one period of interest to an approved loan if its accrual
// timestamp still equals lastApplied.
func (r *PgxTransactionRepository) ApplyInterest(ctx context.Context, loanID string, lastApplied time.Time, interest decimal.Decimal, now time.Time) (bool, error) {
	query := `
		UPDATE transactions
		SET balance = balance + $3,
		    total_interest = total_interest + $3,
		    last_interest_applied_at = $4,
		    last_updated_at = $4
		WHERE transaction_id = $1
		  AND type = 'LOAN'
		  AND status = 'APPROVED'
		  AND last_interest_applied_at = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, loanID, lastApplied, interest, now)
	if err != nil {
		return false, apperrors.NewStoreError("failed to apply interest to loan "+loanID, err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// SettlePayment locks the payment and its loan in id order, runs settle, and writes both rows.
func (r *PgxTransactionRepository) SettlePayment(ctx context.Context, paymentID string, settle portsrepo.SettleFunc) (*domain.Settlement, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	unlocked, err := r.findByID(ctx, tx, paymentID, false)
	if err != nil {
		return nil, err
	}
	if err := unlocked.ValidateSettleable(); err != nil {
		return nil, err
	}
	loanID := *unlocked.RelatedTransactionID

	// Lock in a fixed order so two settlements never wait on each other.
	// A missing loan is reported only after the locked payment is re-checked.
	ids := []string{paymentID, loanID}
	sort.Strings(ids)
	locked := make(map[string]*domain.Transaction, 2)
	var loanErr error
	for _, id := range ids {
		t, err := r.findByID(ctx, tx, id, true)
		if err != nil {
			if id == loanID && errors.Is(err, apperrors.ErrNotFound) {
				loanErr = err
				continue
			}
			return nil, err
		}
		locked[id] = t
	}
	if err := locked[paymentID].ValidateSettleable(); err != nil {
		return nil, err
	}
	if loanErr != nil {
		return nil, loanErr
	}

	settled, err := settle(*locked[paymentID], *locked[loanID])
	if err != nil {
		return nil, err
	}

	batch := &pgx.Batch{}
	loan := mapping.ToModelTransaction(settled.Loan)
	batch.Queue(`
		UPDATE transactions
		SET balance = $2, status = $3, last_payment_at = $4, last_updated_at = $5, last_updated_by = $6
		WHERE transaction_id = $1;`,
		loan.TransactionID, loan.Balance, loan.Status, loan.LastPaymentAt, loan.LastUpdatedAt, loan.LastUpdatedBy)
	payment := mapping.ToModelTransaction(settled.Payment)
	batch.Queue(`
		UPDATE transactions
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1;`,
		payment.TransactionID, payment.Status, payment.LastUpdatedAt, payment.LastUpdatedBy)

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return nil, apperrors.NewStoreError("failed to write settlement of payment "+paymentID, err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewStoreError("failed to close settlement batch", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &settled, nil
}

// ArchiveFiscalYear flags every transaction of a year as archived.
func (r *PgxTransactionRepository) ArchiveFiscalYear(ctx context.Context, year int, userID string, now time.Time) (int64, error) {
	query := `
		UPDATE transactions
		SET is_archived = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE fiscal_year = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, year, now, userID)
	if err != nil {
		return 0, apperrors.NewStoreError("failed to archive fiscal year "+strconv.Itoa(year), err)
	}
	return cmdTag.RowsAffected(), nil
}
