package domain

import (
	"github.com/shopspring/decimal"
)

// DebitCredit holds raw debit and credit sums for one account. The two sides
// are never netted against each other: the audit export represents an
// opening position as two separate non-offsetting totals.
type DebitCredit struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// Add returns the element-wise sum of two DebitCredit values.
func (dc DebitCredit) Add(other DebitCredit) DebitCredit {
	return DebitCredit{
		Debit:  dc.Debit.Add(other.Debit),
		Credit: dc.Credit.Add(other.Credit),
	}
}

// BalancePosition is the cumulative balance-sheet position of a company as of
// an inclusive cutoff date, used by annual tax aggregation.
type BalancePosition struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	// Equity is derived by subtraction, not summed from equity accounts.
	Equity decimal.Decimal `json:"equity"`
	// PrivateWithdrawals collects positive nets on private-role accounts
	// (more debit than credit on an equity account means an owner draw).
	PrivateWithdrawals decimal.Decimal `json:"privateWithdrawals"`
	// PrivateDeposits collects negative nets on private-role accounts,
	// stored as an absolute value.
	PrivateDeposits decimal.Decimal `json:"privateDeposits"`
}
