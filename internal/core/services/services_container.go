package services

import (
	portsrepo "github.com/SscSPs/paluwagan_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/paluwagan_app/internal/core/ports/services"
	"github.com/SscSPs/paluwagan_app/internal/platform/clock"
	"github.com/SscSPs/paluwagan_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, clk clock.Clock) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(repos.TransactionRepo, clk)
	container.Interest = NewInterestService(repos.TransactionRepo, clk, WithInterestWorkers(cfg.InterestWorkers))
	container.Settlement = NewSettlementService(repos.TransactionRepo, clk)

	// Reporting reads starting balances through the fiscal year service
	container.FiscalYear = NewFiscalYearService(repos.FiscalYearRepo, repos.TransactionRepo, clk)
	container.Reporting = NewReportingService(repos.TransactionRepo, container.FiscalYear, clk)

	container.LinkedMember = NewLinkedMemberService(repos.LinkedMemberRepo, clk)

	return container
}
