package domain

import "github.com/shopspring/decimal"

// Statutory Dutch VAT rates. Any explicit or implied rate outside these
// bands is taxed conservatively at the high rate.
var (
	BtwHighRate = decimal.NewFromInt(21)
	BtwLowRate  = decimal.NewFromInt(9)
)

// RateBucket accumulates the turnover base and the VAT charged for one
// statutory rate.
type RateBucket struct {
	Base decimal.Decimal `json:"base"`
	Vat  decimal.Decimal `json:"vat"`
}

// BtwCalculation holds the figures of a quarterly BTW (Dutch VAT) return.
// Every subtotal is independently rounded to two decimals; summing the
// rounded buckets may therefore differ from the raw sum by at most a cent,
// which is accepted rather than corrected.
type BtwCalculation struct {
	Year    int `json:"year"`
	Quarter int `json:"quarter"`

	HighRate RateBucket `json:"highRate"` // 21%
	LowRate  RateBucket `json:"lowRate"`  // 9%
	ZeroRate RateBucket `json:"zeroRate"` // 0%, Vat always zero

	InputVat     decimal.Decimal `json:"inputVat"`     // Voorbelasting: reclaimable VAT on purchases
	OutputVatDue decimal.Decimal `json:"outputVatDue"` // HighRate.Vat + LowRate.Vat
	Net          decimal.Decimal `json:"net"`          // OutputVatDue - InputVat; negative means a refund
	RefundDue    decimal.Decimal `json:"refundDue"`    // max(0, -Net)
}
