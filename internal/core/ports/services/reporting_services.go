package services

import (
	"context"
	"time"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReportingSvc is the ledger aggregation engine: the shared primitive
// consumed by the BTW calculator and the audit file exporter.
type LedgerReportingSvc interface {
	// OpeningBalances computes per-account debit/credit sums over all FINAL
	// lines strictly before periodStart. The two sides are never netted.
	OpeningBalances(ctx context.Context, companyID string, periodStart time.Time) (map[string]domain.DebitCredit, error)

	// BalancePosition computes the cumulative balance-sheet position over
	// all FINAL lines through the inclusive cutoff date.
	BalancePosition(ctx context.Context, companyID string, cutoff time.Time) (*domain.BalancePosition, error)

	// StartEquity computes the opening equity of a year by rerunning the
	// cumulative scan with cutoff at the last day of the previous year.
	StartEquity(ctx context.Context, companyID string, year int) (decimal.Decimal, error)

	// TransactionsInPeriod retrieves FINAL entries with their lines for the
	// closed period, ordered by entry date ascending.
	TransactionsInPeriod(ctx context.Context, companyID string, period domain.FiscalPeriod) ([]domain.EntryWithLines, error)
}

// BtwSvc produces the quarterly BTW (Dutch VAT) return figures.
type BtwSvc interface {
	// CalculateQuarter loads the quarter's sales and purchase invoices and
	// computes the BTW return.
	CalculateQuarter(ctx context.Context, companyID string, year, quarter int) (*domain.BtwCalculation, error)
}

// AuditfileSvc serializes a fiscal year into the statutory audit file.
type AuditfileSvc interface {
	// ExportYear produces the audit document for the fiscal year and the
	// suggested download filename.
	ExportYear(ctx context.Context, companyID string, year int) ([]byte, string, error)
}
