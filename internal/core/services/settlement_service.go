package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/paluwagan_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/paluwagan_app/internal/core/ports/services"
	"github.com/SscSPs/paluwagan_app/internal/platform/clock"
	"github.com/SscSPs/paluwagan_app/internal/platform/metrics"
)

// settlementService applies approved payments to loans.
type settlementService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(txnRepo portsrepo.TransactionRepositoryFacade, clk clock.Clock) portssvc.SettlementSvc {
	return &settlementService{
		BaseService: newBaseService(clk),
		txnRepo:     txnRepo,
	}
}

var _ portssvc.SettlementSvc = (*settlementService)(nil)

// ApprovePayment implements portssvc.SettlementSvc
func (s *settlementService) ApprovePayment(ctx context.Context, paymentID string, actorID string) (*domain.Settlement, error) {
	logger := s.GetLogger(ctx).With(slog.String("payment_id", paymentID))
	now := s.Now()

	settlement, err := s.txnRepo.SettlePayment(ctx, paymentID, func(payment, loan domain.Transaction) (domain.Settlement, error) {
		settled, err := domain.Settle(payment, loan, now)
		if err != nil {
			return domain.Settlement{}, err
		}
		settled.Payment.LastUpdatedBy = actorID
		settled.Loan.LastUpdatedBy = actorID
		return settled, nil
	})
	if err != nil {
		metrics.SettlementsTotal.WithLabelValues(settlementOutcome(err)).Inc()
		if errors.Is(err, apperrors.ErrStoreUnavailable) {
			logger.Error("Payment settlement failed", slog.String("error", err.Error()))
		} else {
			logger.Warn("Payment settlement refused", slog.String("error", err.Error()))
		}
		return nil, err
	}

	metrics.SettlementsTotal.WithLabelValues("settled").Inc()
	logger.Info("Payment settled",
		slog.String("loan_id", settlement.Loan.TransactionID),
		slog.String("amount", settlement.Payment.Amount.String()),
		slog.String("new_balance", settlement.Loan.Balance.String()),
		slog.String("loan_status", string(settlement.Loan.Status)),
		slog.String("actor_id", actorID))
	return settlement, nil
}

func settlementOutcome(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrOverPayment):
		return "overpayment"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrInvalidState):
		return "invalid_state"
	default:
		return "error"
	}
}
