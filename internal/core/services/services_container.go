package services

import (
	portsrepo "github.com/jdvries-dev/boekhoud_app/internal/core/ports/repositories"
	portssvc "github.com/jdvries-dev/boekhoud_app/internal/core/ports/services"
	"github.com/jdvries-dev/boekhoud_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Company service first; its authorizer is a dependency of everything else.
	container.Company = NewCompanyService(repos.CompanyRepo)
	authorizer := portssvc.CompanyAuthorizerSvc(container.Company)

	missingAccounts := MissingAccountExclude
	if cfg.FailOnMissingAccount {
		missingAccounts = MissingAccountFail
	}

	container.Account = NewAccountService(repos.AccountRepo,
		WithAccountCompanyAuthorizer(authorizer))
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo,
		WithJournalCompanyAuthorizer(authorizer))
	container.Invoice = NewInvoiceService(repos.InvoiceRepo,
		WithInvoiceCompanyAuthorizer(authorizer))
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.AccountRepo,
		WithLedgerCompanyAuthorizer(authorizer),
		WithMissingAccountPolicy(missingAccounts))
	container.Btw = NewBtwService(repos.InvoiceRepo,
		WithBtwCompanyAuthorizer(authorizer))
	container.Auditfile = NewAuditfileService(container.Ledger, repos.AccountRepo, repos.CompanyRepo,
		WithAuditfileCompanyAuthorizer(authorizer),
		WithAuditfileMissingAccountPolicy(missingAccounts),
		WithSoftwareIdentity(cfg.SoftwareDescription, cfg.SoftwareVersion))

	return container
}
