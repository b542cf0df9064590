package dto

import (
	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateBucketResponse is one statutory rate bucket in the BTW report response.
type RateBucketResponse struct {
	Base decimal.Decimal `json:"base"`
	Vat  decimal.Decimal `json:"vat"`
}

// BtwReportResponse represents the quarterly BTW return figures.
type BtwReportResponse struct {
	Year         int                `json:"year"`
	Quarter      int                `json:"quarter"`
	HighRate     RateBucketResponse `json:"highRate"`
	LowRate      RateBucketResponse `json:"lowRate"`
	ZeroRate     RateBucketResponse `json:"zeroRate"`
	InputVat     decimal.Decimal    `json:"inputVat"`
	OutputVatDue decimal.Decimal    `json:"outputVatDue"`
	Net          decimal.Decimal    `json:"net"`
	RefundDue    decimal.Decimal    `json:"refundDue"`
}

// ToBtwReportResponse converts a domain BTW calculation to a DTO response.
func ToBtwReportResponse(calc *domain.BtwCalculation) BtwReportResponse {
	return BtwReportResponse{
		Year:         calc.Year,
		Quarter:      calc.Quarter,
		HighRate:     RateBucketResponse{Base: calc.HighRate.Base, Vat: calc.HighRate.Vat},
		LowRate:      RateBucketResponse{Base: calc.LowRate.Base, Vat: calc.LowRate.Vat},
		ZeroRate:     RateBucketResponse{Base: calc.ZeroRate.Base, Vat: calc.ZeroRate.Vat},
		InputVat:     calc.InputVat,
		OutputVatDue: calc.OutputVatDue,
		Net:          calc.Net,
		RefundDue:    calc.RefundDue,
	}
}

// BalancePositionResponse represents the cumulative balance-sheet position.
type BalancePositionResponse struct {
	AsOf               string          `json:"asOf"`
	TotalAssets        decimal.Decimal `json:"totalAssets"`
	TotalLiabilities   decimal.Decimal `json:"totalLiabilities"`
	Equity             decimal.Decimal `json:"equity"`
	PrivateWithdrawals decimal.Decimal `json:"privateWithdrawals"`
	PrivateDeposits    decimal.Decimal `json:"privateDeposits"`
}
