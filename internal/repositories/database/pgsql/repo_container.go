package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/jdvries-dev/boekhoud_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	companyRepo := newPgxCompanyRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo: accountRepo,
		JournalRepo: journalRepo,
		LedgerRepo:  journalRepo,
		InvoiceRepo: invoiceRepo,
		CompanyRepo: companyRepo,
	}
}
