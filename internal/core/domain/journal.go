package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	// Draft entries are work in progress and invisible to all reporting.
	Draft JournalStatus = "DRAFT"
	// Final entries are immutable and the only status eligible for reporting.
	Final JournalStatus = "FINAL"
)

// JournalEntry represents a single, balanced financial event composed of
// multiple journal lines.
type JournalEntry struct {
	EntryID       string        `json:"entryID"`       // Primary key (UUID)
	CompanyID     string        `json:"companyID"`     // FK -> companies.company_id (NON-NULL)
	EntryDate     time.Time     `json:"entryDate"`     // Date the event occurred
	Status        JournalStatus `json:"status"`        // DRAFT or FINAL
	Description   string        `json:"description"`   // Nullable user description
	MemoriaalType string        `json:"memoriaalType"` // Optional transaction-type tag, used for export labeling only
	AuditFields
}

// JournalLine represents a single line item within a journal entry,
// affecting one account. Exactly one of Debit/Credit is expected to be
// positive; both are stored to keep the posting side explicit.
type JournalLine struct {
	LineID      string          `json:"lineID"`      // Primary key (UUID)
	EntryID     string          `json:"entryID"`     // FK -> JournalEntry.entryID (Not Null)
	AccountID   string          `json:"accountID"`   // FK -> Account.accountID (Not Null)
	Debit       decimal.Decimal `json:"debit"`       // >= 0, two-decimal precision
	Credit      decimal.Decimal `json:"credit"`      // >= 0, two-decimal precision
	Description string          `json:"description"` // Nullable
	AuditFields
}

// EntryWithLines pairs a journal entry with its owned lines, ordered as
// stored. The reporting core consumes entries exclusively in this shape.
type EntryWithLines struct {
	Entry JournalEntry  `json:"entry"`
	Lines []JournalLine `json:"lines"`
}

// DatedLine is a journal line joined with its parent entry's date,
// the unit of the balance aggregation scans.
type DatedLine struct {
	AccountID string
	EntryDate time.Time
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}
