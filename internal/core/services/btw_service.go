package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jdvries-dev/boekhoud_app/internal/apperrors"
	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	portsrepo "github.com/jdvries-dev/boekhoud_app/internal/core/ports/repositories"
	portssvc "github.com/jdvries-dev/boekhoud_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// rateClass is the statutory bucket a turnover amount falls into.
type rateClass int

const (
	rateHigh rateClass = iota // 21%
	rateLow                   // 9%
	rateZero                  // 0%
)

// btwLine is the canonical classification unit. Both invoice shapes
// (itemized and aggregate) normalize into this before any bucketing, so the
// calculator itself never branches on record shape.
type btwLine struct {
	base  decimal.Decimal
	vat   decimal.Decimal
	class rateClass
}

var (
	hundred       = decimal.NewFromInt(100)
	highBandLow   = decimal.NewFromInt(20)
	highBandHigh  = decimal.NewFromInt(22)
	lowBandLow    = decimal.NewFromInt(8)
	lowBandHigh   = decimal.NewFromInt(10)
	zeroBandLimit = decimal.NewFromInt(1)
)

// btwService implements the BtwSvc interface.
type btwService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepository
}

// BtwServiceOption is a functional option for configuring the BTW service
type BtwServiceOption func(*btwService)

// WithBtwCompanyAuthorizer sets the company authorizer for the BTW service.
func WithBtwCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) BtwServiceOption {
	return func(s *btwService) {
		s.CompanyAuthorizer = authorizer
	}
}

// NewBtwService creates a new BTW service with the provided options
func NewBtwService(invoiceRepo portsrepo.InvoiceRepository, options ...BtwServiceOption) portssvc.BtwSvc {
	svc := &btwService{
		invoiceRepo: invoiceRepo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.BtwSvc = (*btwService)(nil)

// CalculateQuarter loads the quarter's sales and purchase invoices and
// computes the BTW return figures.
func (s *btwService) CalculateQuarter(ctx context.Context, companyID string, year, quarter int) (*domain.BtwCalculation, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}

	period, err := domain.QuarterPeriod(year, quarter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	sales, err := s.invoiceRepo.FindInvoicesInPeriod(ctx, companyID, domain.SalesInvoice, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve sales invoices for BTW calculation",
			slog.String("company_id", companyID),
			slog.Int("year", year), slog.Int("quarter", quarter))
		return nil, fmt.Errorf("failed to retrieve sales invoices: %w", err)
	}

	purchases, err := s.invoiceRepo.FindInvoicesInPeriod(ctx, companyID, domain.PurchaseInvoice, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve purchase invoices for BTW calculation",
			slog.String("company_id", companyID),
			slog.Int("year", year), slog.Int("quarter", quarter))
		return nil, fmt.Errorf("failed to retrieve purchase invoices: %w", err)
	}

	calc := ComputeBtw(sales, purchases)
	calc.Year = year
	calc.Quarter = quarter

	s.LogInfo(ctx, "BTW calculation completed",
		slog.String("company_id", companyID),
		slog.Int("year", year), slog.Int("quarter", quarter),
		slog.String("net", calc.Net.String()))
	return &calc, nil
}

// ComputeBtw computes the quarterly BTW return figures from the given
// invoice sets. It is a pure function: idempotent and invariant to input
// ordering. Draft sales invoices are skipped; purchase invoices count
// regardless of status, since input VAT is reclaimable once recorded.
//
// Every monetary subtotal is rounded to two decimals independently before
// being combined. Summing already-rounded buckets can therefore differ by at
// most a cent from summing raw values; that difference is accepted, not
// corrected.
func ComputeBtw(salesInvoices, purchaseInvoices []domain.Invoice) domain.BtwCalculation {
	calc := domain.BtwCalculation{
		HighRate: domain.RateBucket{Base: decimal.Zero, Vat: decimal.Zero},
		LowRate:  domain.RateBucket{Base: decimal.Zero, Vat: decimal.Zero},
		ZeroRate: domain.RateBucket{Base: decimal.Zero, Vat: decimal.Zero},
		InputVat: decimal.Zero,
	}

	for _, invoice := range salesInvoices {
		if !invoice.CountsForVatPeriod() {
			continue
		}
		for _, line := range normalizeInvoice(invoice) {
			switch line.class {
			case rateHigh:
				calc.HighRate.Base = calc.HighRate.Base.Add(line.base)
				calc.HighRate.Vat = calc.HighRate.Vat.Add(line.vat)
			case rateLow:
				calc.LowRate.Base = calc.LowRate.Base.Add(line.base)
				calc.LowRate.Vat = calc.LowRate.Vat.Add(line.vat)
			case rateZero:
				calc.ZeroRate.Base = calc.ZeroRate.Base.Add(line.base)
			}
		}
	}

	// Purchase-side VAT is the direct sum of each invoice's VAT amount;
	// no rate classification is applied to purchases.
	for _, invoice := range purchaseInvoices {
		calc.InputVat = calc.InputVat.Add(purchaseVatAmount(invoice))
	}

	calc.HighRate.Base = calc.HighRate.Base.Round(2)
	calc.HighRate.Vat = calc.HighRate.Vat.Round(2)
	calc.LowRate.Base = calc.LowRate.Base.Round(2)
	calc.LowRate.Vat = calc.LowRate.Vat.Round(2)
	calc.ZeroRate.Base = calc.ZeroRate.Base.Round(2)
	calc.InputVat = calc.InputVat.Round(2)

	calc.OutputVatDue = calc.HighRate.Vat.Add(calc.LowRate.Vat).Round(2)
	calc.Net = calc.OutputVatDue.Sub(calc.InputVat).Round(2)
	if calc.Net.IsNegative() {
		calc.RefundDue = calc.Net.Neg()
	} else {
		calc.RefundDue = decimal.Zero
	}

	return calc
}

// normalizeInvoice reconciles the two coexisting invoice shapes into
// canonical classification lines. Itemized invoices classify per line on the
// explicit VAT percentage; aggregate records fall back to an implied rate.
func normalizeInvoice(invoice domain.Invoice) []btwLine {
	if invoice.IsItemized() {
		lines := make([]btwLine, 0, len(invoice.Items))
		for _, item := range invoice.Items {
			base := item.Quantity.Mul(item.UnitPrice).Round(2)
			vat := base.Mul(item.VatPercentage).Div(hundred).Round(2)
			lines = append(lines, btwLine{
				base:  base,
				vat:   vat,
				class: classifyExplicitRate(item.VatPercentage),
			})
		}
		return lines
	}
	return []btwLine{normalizeAggregate(invoice)}
}

// normalizeAggregate infers a classification for a record that carries only
// aggregate amounts and no explicit rate.
func normalizeAggregate(invoice domain.Invoice) btwLine {
	net := invoice.NetAmount
	vat := invoice.VatAmount

	// Zero VAT and no net base, but a positive total: the whole total is
	// zero-rated turnover.
	if vat.IsZero() && net.IsZero() && invoice.TotalAmount.IsPositive() {
		return btwLine{base: invoice.TotalAmount.Round(2), class: rateZero}
	}

	return btwLine{
		base:  net.Round(2),
		vat:   vat.Round(2),
		class: classifyImpliedRate(net, vat),
	}
}

// classifyExplicitRate buckets an explicit VAT percentage. Any rate outside
// the statutory set is conservatively taxed at the high rate.
func classifyExplicitRate(percentage decimal.Decimal) rateClass {
	switch {
	case percentage.Equal(domain.BtwHighRate):
		return rateHigh
	case percentage.Equal(domain.BtwLowRate):
		return rateLow
	case percentage.IsZero():
		return rateZero
	default:
		return rateHigh
	}
}

// classifyImpliedRate buckets an implied rate vat/net by tolerance band:
// 20-22% high, 8-10% low, <1% zero, anything else high.
func classifyImpliedRate(net, vat decimal.Decimal) rateClass {
	if net.IsZero() {
		return rateHigh
	}
	rate := vat.Div(net).Mul(hundred)
	switch {
	case rate.GreaterThanOrEqual(highBandLow) && rate.LessThanOrEqual(highBandHigh):
		return rateHigh
	case rate.GreaterThanOrEqual(lowBandLow) && rate.LessThanOrEqual(lowBandHigh):
		return rateLow
	case rate.LessThan(zeroBandLimit):
		return rateZero
	default:
		return rateHigh
	}
}

// purchaseVatAmount returns the reclaimable VAT on one purchase invoice.
// Itemized records without a stored aggregate derive it from their lines.
func purchaseVatAmount(invoice domain.Invoice) decimal.Decimal {
	if invoice.IsItemized() && invoice.VatAmount.IsZero() {
		vat := decimal.Zero
		for _, item := range invoice.Items {
			base := item.Quantity.Mul(item.UnitPrice).Round(2)
			vat = vat.Add(base.Mul(item.VatPercentage).Div(hundred).Round(2))
		}
		return vat
	}
	return invoice.VatAmount.Round(2)
}
