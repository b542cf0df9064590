package services

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	portsrepo "github.com/jdvries-dev/boekhoud_app/internal/core/ports/repositories"
	portssvc "github.com/jdvries-dev/boekhoud_app/internal/core/ports/services"
	"github.com/jdvries-dev/boekhoud_app/internal/dto"
	"github.com/shopspring/decimal"
)

// memoriaalFallback labels transactions whose entry carries no type tag.
const memoriaalFallback = "memoriaal"

// auditfileService implements the AuditfileSvc interface. It composes the
// aggregation engine's opening balances and period transactions into the
// statutory audit document.
type auditfileService struct {
	BaseService
	ledger          portssvc.LedgerReportingSvc
	accountRepo     portsrepo.AccountRepository
	companyRepo     portsrepo.CompanyRepository
	softwareDesc    string
	softwareVersion string
	missingAccounts MissingAccountPolicy
	now             func() time.Time
}

// AuditfileServiceOption is a functional option for configuring the auditfile service
type AuditfileServiceOption func(*auditfileService)

// WithSoftwareIdentity sets the software identity embedded in the document header.
func WithSoftwareIdentity(description, version string) AuditfileServiceOption {
	return func(s *auditfileService) {
		s.softwareDesc = description
		s.softwareVersion = version
	}
}

// WithAuditfileMissingAccountPolicy sets the unresolved-account policy.
func WithAuditfileMissingAccountPolicy(policy MissingAccountPolicy) AuditfileServiceOption {
	return func(s *auditfileService) {
		s.missingAccounts = policy
	}
}

// WithAuditfileCompanyAuthorizer sets the company authorizer for the auditfile service.
func WithAuditfileCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) AuditfileServiceOption {
	return func(s *auditfileService) {
		s.CompanyAuthorizer = authorizer
	}
}

// WithClock overrides the generation timestamp source.
func WithClock(now func() time.Time) AuditfileServiceOption {
	return func(s *auditfileService) {
		s.now = now
	}
}

// NewAuditfileService creates a new auditfile service with the provided options
func NewAuditfileService(ledger portssvc.LedgerReportingSvc, accountRepo portsrepo.AccountRepository, companyRepo portsrepo.CompanyRepository, options ...AuditfileServiceOption) portssvc.AuditfileSvc {
	svc := &auditfileService{
		ledger:          ledger,
		accountRepo:     accountRepo,
		companyRepo:     companyRepo,
		softwareDesc:    "Boekhoud App",
		softwareVersion: "1.0",
		now:             time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.AuditfileSvc = (*auditfileService)(nil)

// ExportYear serializes the fiscal year into the audit document and returns
// the XML bytes with the suggested download filename. The export is a single
// read-then-compute pass; it either completes as a whole or fails as a whole.
func (s *auditfileService) ExportYear(ctx context.Context, companyID string, year int) ([]byte, string, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, "", err
	}

	period := domain.YearPeriod(year)

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load company for audit export",
			slog.String("company_id", companyID))
		return nil, "", fmt.Errorf("failed to load company: %w", err)
	}

	accounts, err := s.accountRepo.FindActiveAccounts(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for audit export",
			slog.String("company_id", companyID))
		return nil, "", fmt.Errorf("failed to load accounts: %w", err)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Code < accounts[j].Code
	})

	openingBalances, err := s.ledger.OpeningBalances(ctx, companyID, period.Start)
	if err != nil {
		return nil, "", fmt.Errorf("failed to compute opening balances: %w", err)
	}

	entries, err := s.ledger.TransactionsInPeriod(ctx, companyID, period)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load period transactions: %w", err)
	}

	transactions, err := s.buildTransactions(ctx, entries, accounts)
	if err != nil {
		return nil, "", err
	}

	doc := dto.Auditfile{
		Xmlns: dto.XafNamespace,
		Header: dto.AuditfileHeader{
			FiscalYear:      fmt.Sprintf("%d", year),
			StartDate:       period.Start.Format(time.DateOnly),
			EndDate:         period.End.Format(time.DateOnly),
			CurCode:         "EUR",
			DateCreated:     s.now().UTC().Format(time.RFC3339),
			SoftwareDesc:    s.softwareDesc,
			SoftwareVersion: s.softwareVersion,
		},
		Company: dto.AuditfileCompany{
			CompanyName:            company.Name,
			TaxRegistrationCountry: "NL",
			TaxRegIdent:            company.VatNumber,
		},
		GeneralLedger: dto.GeneralLedger{
			Accounts: buildLedgerAccounts(accounts, openingBalances),
		},
		Transactions: transactions,
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.LogError(ctx, err, "Failed to serialize audit document",
			slog.String("company_id", companyID))
		return nil, "", fmt.Errorf("failed to serialize audit document: %w", err)
	}

	out := append([]byte(xml.Header), body...)
	out = append(out, '\n')
	filename := fmt.Sprintf("auditfile_%d.xaf", year)

	s.LogInfo(ctx, "Audit file exported",
		slog.String("company_id", companyID),
		slog.Int("year", year),
		slog.Int("account_count", len(accounts)),
		slog.Int("transaction_count", len(transactions.Entries)))
	return out, filename, nil
}

// buildLedgerAccounts renders the chart of accounts with two non-netted
// opening-balance entries per account. Accounts with no pre-period postings
// still carry both entries, at zero.
func buildLedgerAccounts(accounts []domain.Account, opening map[string]domain.DebitCredit) []dto.LedgerAccount {
	out := make([]dto.LedgerAccount, 0, len(accounts))
	for _, account := range accounts {
		balance := opening[account.AccountID]
		out = append(out, dto.LedgerAccount{
			AccID:    account.Code,
			AccDesc:  account.Name,
			AccTp:    string(account.AccountType),
			LeadCode: account.TaxonomyCode,
			OpeningBalances: []dto.OpeningBalance{
				{AmntTp: "D", Amnt: formatAmount(balance.Debit)},
				{AmntTp: "C", Amnt: formatAmount(balance.Credit)},
			},
		})
	}
	return out
}

// buildTransactions renders the period's final entries. Entries without
// lines are skipped entirely; a line whose account cannot be resolved
// against the active-account list follows the unresolved-account policy.
func (s *auditfileService) buildTransactions(ctx context.Context, entries []domain.EntryWithLines, accounts []domain.Account) (dto.Transactions, error) {
	accountsByID := make(map[string]domain.Account, len(accounts))
	for _, account := range accounts {
		accountsByID[account.AccountID] = account
	}

	transactions := dto.Transactions{Entries: []dto.AuditTransaction{}}
	for _, entry := range entries {
		if len(entry.Lines) == 0 {
			continue
		}

		trTp := entry.Entry.MemoriaalType
		if trTp == "" {
			trTp = memoriaalFallback
		}

		transaction := dto.AuditTransaction{
			Nr:           truncateID(entry.Entry.EntryID),
			Desc:         entry.Entry.Description,
			PeriodNumber: int(entry.Entry.EntryDate.Month()),
			TrDt:         entry.Entry.EntryDate.Format(time.DateOnly),
			TrTp:         trTp,
		}

		for _, line := range entry.Lines {
			account, ok := accountsByID[line.AccountID]
			if !ok {
				if s.missingAccounts == MissingAccountFail {
					return dto.Transactions{}, fmt.Errorf("journal line %s references unresolved account %s", line.LineID, line.AccountID)
				}
				s.LogWarn(ctx, "Dropping line with unresolved account from audit export",
					slog.String("line_id", line.LineID),
					slog.String("account_id", line.AccountID))
				continue
			}

			amount, amountType := splitAmount(line.Debit, line.Credit)
			transaction.Lines = append(transaction.Lines, dto.AuditTransactionLine{
				AccID:  account.Code,
				Desc:   line.Description,
				Amnt:   formatAmount(amount),
				AmntTp: amountType,
			})
		}

		transactions.Entries = append(transactions.Entries, transaction)
	}
	return transactions, nil
}

// splitAmount resolves a line's amounts into exactly one tagged side. A line
// with both sides zero degenerates to a credit-tagged zero amount.
func splitAmount(debit, credit decimal.Decimal) (decimal.Decimal, string) {
	if debit.IsPositive() {
		return debit, "D"
	}
	return credit, "C"
}

// truncateID shortens an entry id to its first 8 characters. Collisions are
// possible in principle but the prefix is unique in practice.
func truncateID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// formatAmount renders a currency value with exactly two decimal digits,
// fixed-point, no thousands separators.
func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
