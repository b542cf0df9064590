package services_test

import (
	"context"
	"time"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	portsrepo "github.com/jdvries-dev/boekhoud_app/internal/core/ports/repositories"
	portssvc "github.com/jdvries-dev/boekhoud_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, companyID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindActiveAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, companyID string, limit, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, companyID, accountID, userID string, now time.Time) error {
	args := m.Called(ctx, companyID, accountID, userID, now)
	return args.Error(0)
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

// MockLedgerReadRepository is a mock type for the LedgerReadRepository interface
type MockLedgerReadRepository struct {
	mock.Mock
}

func (m *MockLedgerReadRepository) FindFinalLines(ctx context.Context, companyID string, cutoff time.Time, inclusive bool) ([]domain.DatedLine, error) {
	args := m.Called(ctx, companyID, cutoff, inclusive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DatedLine), args.Error(1)
}

func (m *MockLedgerReadRepository) FindFinalEntriesInPeriod(ctx context.Context, companyID string, period domain.FiscalPeriod) ([]domain.EntryWithLines, error) {
	args := m.Called(ctx, companyID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntryWithLines), args.Error(1)
}

var _ portsrepo.LedgerReadRepository = (*MockLedgerReadRepository)(nil)

// MockJournalRepository is a mock type for the JournalRepository interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.EntryWithLines, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntryWithLines), args.Error(1)
}

func (m *MockJournalRepository) FinalizeEntry(ctx context.Context, companyID, entryID, userID string, now time.Time) error {
	args := m.Called(ctx, companyID, entryID, userID, now)
	return args.Error(0)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, companyID string, limit, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

var _ portsrepo.JournalRepository = (*MockJournalRepository)(nil)

// MockInvoiceRepository is a mock type for the InvoiceRepository interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, kind domain.InvoiceKind, invoice domain.Invoice) error {
	args := m.Called(ctx, kind, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, companyID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoicesInPeriod(ctx context.Context, companyID string, kind domain.InvoiceKind, period domain.FiscalPeriod) ([]domain.Invoice, error) {
	args := m.Called(ctx, companyID, kind, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, companyID string, kind domain.InvoiceKind, limit, offset int) ([]domain.Invoice, error) {
	args := m.Called(ctx, companyID, kind, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

var _ portsrepo.InvoiceRepository = (*MockInvoiceRepository)(nil)

// MockCompanyRepository is a mock type for the CompanyRepository interface
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

var _ portsrepo.CompanyRepository = (*MockCompanyRepository)(nil)

// MockLedgerReportingSvc is a mock type for the LedgerReportingSvc interface
type MockLedgerReportingSvc struct {
	mock.Mock
}

func (m *MockLedgerReportingSvc) OpeningBalances(ctx context.Context, companyID string, periodStart time.Time) (map[string]domain.DebitCredit, error) {
	args := m.Called(ctx, companyID, periodStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.DebitCredit), args.Error(1)
}

func (m *MockLedgerReportingSvc) BalancePosition(ctx context.Context, companyID string, cutoff time.Time) (*domain.BalancePosition, error) {
	args := m.Called(ctx, companyID, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalancePosition), args.Error(1)
}

func (m *MockLedgerReportingSvc) StartEquity(ctx context.Context, companyID string, year int) (decimal.Decimal, error) {
	args := m.Called(ctx, companyID, year)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerReportingSvc) TransactionsInPeriod(ctx context.Context, companyID string, period domain.FiscalPeriod) ([]domain.EntryWithLines, error) {
	args := m.Called(ctx, companyID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntryWithLines), args.Error(1)
}

var _ portssvc.LedgerReportingSvc = (*MockLedgerReportingSvc)(nil)
