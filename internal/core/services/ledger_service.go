package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	portsrepo "github.com/jdvries-dev/boekhoud_app/internal/core/ports/repositories"
	portssvc "github.com/jdvries-dev/boekhoud_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// MissingAccountPolicy decides what happens when a journal line references
// an account that cannot be resolved.
type MissingAccountPolicy int

const (
	// MissingAccountExclude drops the line from all totals and logs it.
	MissingAccountExclude MissingAccountPolicy = iota
	// MissingAccountFail aborts the whole computation.
	MissingAccountFail
)

// ledgerService implements the LedgerReportingSvc interface: the aggregation
// engine shared by the BTW calculator and the audit file exporter. It is a
// pure read-then-compute pass over a snapshot; no state is kept between
// invocations.
type ledgerService struct {
	BaseService
	ledgerRepo      portsrepo.LedgerReadRepository
	accountRepo     portsrepo.AccountRepository
	missingAccounts MissingAccountPolicy
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithMissingAccountPolicy sets the unresolved-account policy.
func WithMissingAccountPolicy(policy MissingAccountPolicy) LedgerServiceOption {
	return func(s *ledgerService) {
		s.missingAccounts = policy
	}
}

// WithLedgerCompanyAuthorizer sets the company authorizer for the ledger service.
func WithLedgerCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) LedgerServiceOption {
	return func(s *ledgerService) {
		s.CompanyAuthorizer = authorizer
	}
}

// NewLedgerService creates a new ledger reporting service with the provided options
func NewLedgerService(ledgerRepo portsrepo.LedgerReadRepository, accountRepo portsrepo.AccountRepository, options ...LedgerServiceOption) portssvc.LedgerReportingSvc {
	svc := &ledgerService{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.LedgerReportingSvc = (*ledgerService)(nil)

// OpeningBalances computes per-account debit and credit totals over all FINAL
// lines strictly before periodStart. Both raw sums are retained because the
// audit export represents an opening position as two separate non-offsetting
// totals. A range with no matching lines yields an empty map, not an error.
func (s *ledgerService) OpeningBalances(ctx context.Context, companyID string, periodStart time.Time) (map[string]domain.DebitCredit, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}

	lines, err := s.ledgerRepo.FindFinalLines(ctx, companyID, periodStart, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve lines for opening balances",
			slog.String("company_id", companyID),
			slog.String("period_start", periodStart.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to retrieve lines for opening balances: %w", err)
	}

	balances := make(map[string]domain.DebitCredit, len(lines))
	for _, line := range lines {
		balances[line.AccountID] = balances[line.AccountID].Add(domain.DebitCredit{
			Debit:  line.Debit,
			Credit: line.Credit,
		})
	}

	s.LogInfo(ctx, "Opening balances computed",
		slog.String("company_id", companyID),
		slog.String("period_start", periodStart.Format(time.DateOnly)),
		slog.Int("account_count", len(balances)))
	return balances, nil
}

// BalancePosition computes the cumulative balance-sheet position over all
// FINAL lines through the inclusive cutoff date. Assets and liabilities are
// summed separately from per-account nets; equity follows by subtraction.
// Private-role accounts feed the withdrawal/deposit totals: a positive net
// on such an account is an owner draw, a negative net a deposit.
func (s *ledgerService) BalancePosition(ctx context.Context, companyID string, cutoff time.Time) (*domain.BalancePosition, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}

	lines, err := s.ledgerRepo.FindFinalLines(ctx, companyID, cutoff, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve lines for balance position",
			slog.String("company_id", companyID),
			slog.String("cutoff", cutoff.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to retrieve lines for balance position: %w", err)
	}

	nets := make(map[string]decimal.Decimal)
	var accountIDs []string
	for _, line := range lines {
		if _, seen := nets[line.AccountID]; !seen {
			accountIDs = append(accountIDs, line.AccountID)
		}
		nets[line.AccountID] = nets[line.AccountID].Add(line.Debit).Sub(line.Credit)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, companyID, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve accounts for balance position",
			slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to resolve accounts for balance position: %w", err)
	}

	position := &domain.BalancePosition{}
	for accountID, net := range nets {
		account, ok := accounts[accountID]
		if !ok {
			if s.missingAccounts == MissingAccountFail {
				return nil, fmt.Errorf("journal line references unknown account %s", accountID)
			}
			s.LogWarn(ctx, "Excluding lines of unresolved account from balance position",
				slog.String("company_id", companyID),
				slog.String("account_id", accountID))
			continue
		}

		switch account.AccountType {
		case domain.Asset:
			position.TotalAssets = position.TotalAssets.Add(net)
		case domain.Liability:
			position.TotalLiabilities = position.TotalLiabilities.Add(net.Neg())
		}

		if account.IsPrivate() {
			if net.IsPositive() {
				position.PrivateWithdrawals = position.PrivateWithdrawals.Add(net)
			} else if net.IsNegative() {
				position.PrivateDeposits = position.PrivateDeposits.Add(net.Abs())
			}
		}
	}

	position.Equity = position.TotalAssets.Sub(position.TotalLiabilities)

	s.LogInfo(ctx, "Balance position computed",
		slog.String("company_id", companyID),
		slog.String("cutoff", cutoff.Format(time.DateOnly)),
		slog.Int("account_count", len(nets)))
	return position, nil
}

// StartEquity computes the opening equity of a year as
// totalAssets - totalLiabilities at the last day of the previous year.
func (s *ledgerService) StartEquity(ctx context.Context, companyID string, year int) (decimal.Decimal, error) {
	cutoff := domain.YearPeriod(year - 1).End
	position, err := s.BalancePosition(ctx, companyID, cutoff)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute start equity for %d: %w", year, err)
	}
	return position.Equity, nil
}

// TransactionsInPeriod retrieves FINAL entries with their lines for the
// closed period, ordered by entry date ascending.
func (s *ledgerService) TransactionsInPeriod(ctx context.Context, companyID string, period domain.FiscalPeriod) ([]domain.EntryWithLines, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.FindFinalEntriesInPeriod(ctx, companyID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve period transactions",
			slog.String("company_id", companyID),
			slog.String("period_start", period.Start.Format(time.DateOnly)),
			slog.String("period_end", period.End.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to retrieve period transactions: %w", err)
	}

	s.LogInfo(ctx, "Period transactions retrieved",
		slog.String("company_id", companyID),
		slog.Int("entry_count", len(entries)))
	return entries, nil
}
