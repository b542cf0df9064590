package domain

import "strings"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsDebitNormal reports whether the account type increases with debit postings.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// AccountRole marks accounts that receive special treatment in reports,
// independent of their accounting type.
type AccountRole string

const (
	// RoleNone is the default for regular ledger accounts.
	RoleNone AccountRole = ""
	// RolePrivate marks equity accounts used for owner withdrawals and
	// deposits ("privé-opnamen" / "privé-stortingen").
	RolePrivate AccountRole = "PRIVATE"
)

// Account represents a ledger account within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountID    string      `json:"accountID"`    // Primary key (UUID)
	CompanyID    string      `json:"companyID"`    // FK -> companies.company_id (NON-NULL)
	Code         string      `json:"code"`         // Short statutory code, unique per company, sortable
	Name         string      `json:"name"`         // User-defined name
	AccountType  AccountType `json:"accountType"`  // ASSET, LIABILITY, etc.
	Role         AccountRole `json:"role"`         // Optional reporting role
	TaxonomyCode string      `json:"taxonomyCode"` // Optional RGS classification code
	IsActive     bool        `json:"isActive"`     // Soft delete or status flag
	AuditFields
}

// IsPrivate reports whether the account books owner withdrawals/deposits.
// The explicit role attribute is authoritative; the name match only covers
// charts of accounts created before the role column existed.
func (a Account) IsPrivate() bool {
	if a.Role == RolePrivate {
		return true
	}
	name := strings.ToLower(a.Name)
	return strings.Contains(name, "prive") || strings.Contains(name, "privé")
}
