package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/paluwagan_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/paluwagan_app/internal/core/ports/services"
	"github.com/SscSPs/paluwagan_app/internal/dto"
	"github.com/SscSPs/paluwagan_app/internal/platform/clock"
	"github.com/SscSPs/paluwagan_app/internal/utils/pagination"
)

// ledgerService owns the transaction lifecycle: creation and review.
type ledgerService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade, clk clock.Clock) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService: newBaseService(clk),
		txnRepo:     txnRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) save(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID), slog.String("type", string(txn.Type)))
		return nil, err
	}
	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("owner_id", txn.OwnerID))
	return &txn, nil
}

// CreateDeposit implements portssvc.LedgerWriterSvc
func (s *ledgerService) CreateDeposit(ctx context.Context, req dto.CreateDepositRequest, ownerID string) (*domain.Transaction, error) {
	txn, err := domain.NewDeposit(uuid.NewString(), ownerID, req.MemberID, req.Amount, req.BeneficiaryName, s.Now())
	if err != nil {
		return nil, err
	}
	return s.save(ctx, txn)
}

// CreateLoan implements portssvc.LedgerWriterSvc
func (s *ledgerService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest, ownerID string) (*domain.Transaction, error) {
	txn, err := domain.NewLoan(uuid.NewString(), ownerID, req.MemberID, req.Principal, req.BeneficiaryKind, req.BeneficiaryName, s.Now())
	if err != nil {
		return nil, err
	}
	return s.save(ctx, txn)
}

// CreatePaymentRequest implements portssvc.LedgerWriterSvc
func (s *ledgerService) CreatePaymentRequest(ctx context.Context, req dto.CreatePaymentRequest, ownerID string) (*domain.Transaction, error) {
	txn, err := domain.NewPaymentRequest(uuid.NewString(), ownerID, req.MemberID, req.RelatedTransactionID, req.Amount, req.BeneficiaryName, s.Now())
	if err != nil {
		return nil, err
	}
	return s.save(ctx, txn)
}

// SetStatus implements portssvc.LedgerWriterSvc
func (s *ledgerService) SetStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, actorID string) (*domain.Transaction, error) {
	logger := s.GetLogger(ctx).With(slog.String("transaction_id", transactionID), slog.String("new_status", string(status)))

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load transaction for status change", slog.String("error", err.Error()))
		}
		return nil, err
	}
	if err := txn.ValidateReviewTransition(status); err != nil {
		logger.Warn("Status change refused", slog.String("current_status", string(txn.Status)), slog.String("error", err.Error()))
		return nil, err
	}

	now := s.Now()
	if err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, txn.Status, status, actorID, now); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Status changed concurrently", slog.String("expected_status", string(txn.Status)))
		} else {
			logger.Error("Failed to update transaction status", slog.String("error", err.Error()))
		}
		return nil, err
	}

	txn.Status = status
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = actorID
	logger.Info("Transaction status updated", slog.String("actor_id", actorID))
	return txn, nil
}

// GetTransaction implements portssvc.LedgerReaderSvc
func (s *ledgerService) GetTransaction(ctx context.Context, transactionID string, caller portssvc.Caller) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	if !caller.Role.IsAdmin() && txn.OwnerID != caller.UserID {
		return nil, fmt.Errorf("%w: transaction %s belongs to another owner", apperrors.ErrForbidden, transactionID)
	}
	return txn, nil
}

// ListTransactions implements portssvc.LedgerReaderSvc
func (s *ledgerService) ListTransactions(ctx context.Context, caller portssvc.Caller, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter := params.ToFilter()
	if !caller.Role.IsAdmin() {
		owner := caller.UserID
		filter.OwnerID = &owner
	}
	if params.FiscalYear != nil {
		if err := domain.ValidateFiscalYear(*params.FiscalYear); err != nil {
			return nil, err
		}
	}
	if params.NextToken != nil && *params.NextToken != "" {
		if _, err := pagination.DecodeCursor(*params.NextToken); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, filter, pagination.ClampLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", caller.UserID))
		return nil, err
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}
