package repositories

// RepositoryProvider bundles all repository implementations handed to the
// service layer.
type RepositoryProvider struct {
	AccountRepo AccountRepository
	JournalRepo JournalRepository
	LedgerRepo  LedgerReadRepository
	InvoiceRepo InvoiceRepository
	CompanyRepo CompanyRepository
}
