package services

// ServiceContainer holds all service facades handed to the HTTP layer.
type ServiceContainer struct {
	Company   CompanySvcFacade
	Account   AccountSvcFacade
	Journal   JournalSvcFacade
	Invoice   InvoiceSvcFacade
	Ledger    LedgerReportingSvc
	Btw       BtwSvc
	Auditfile AuditfileSvc
}
