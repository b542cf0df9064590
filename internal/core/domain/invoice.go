package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceKind distinguishes sales invoices from purchase invoices.
type InvoiceKind string

const (
	SalesInvoice    InvoiceKind = "SALES"
	PurchaseInvoice InvoiceKind = "PURCHASE"
)

// InvoiceStatus indicates the state of a sales or purchase invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "DRAFT"
	InvoiceSent    InvoiceStatus = "SENT"
	InvoicePaid    InvoiceStatus = "PAID"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
)

// legacyStatuses maps the status strings used by records created before the
// status enumeration was normalized. Historical records keep the old strings
// indefinitely, so this mapping is load-bearing, not a migration leftover.
var legacyStatuses = map[string]InvoiceStatus{
	"concept":   InvoiceDraft,
	"verzonden": InvoiceSent,
	"betaald":   InvoicePaid,
	"verlopen":  InvoiceOverdue,
}

// ParseInvoiceStatus resolves current and legacy status strings,
// case-insensitively, to the canonical enumeration. Unknown strings map to
// draft so they never enter a VAT period by accident.
func ParseInvoiceStatus(s string) InvoiceStatus {
	lower := strings.ToLower(strings.TrimSpace(s))
	switch lower {
	case "draft":
		return InvoiceDraft
	case "sent":
		return InvoiceSent
	case "paid":
		return InvoicePaid
	case "overdue":
		return InvoiceOverdue
	}
	if st, ok := legacyStatuses[lower]; ok {
		return st
	}
	return InvoiceDraft
}

// InvoiceItem is a single itemized line on an invoice.
type InvoiceItem struct {
	ItemID        string          `json:"itemID"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	VatPercentage decimal.Decimal `json:"vatPercentage"`
}

// Invoice represents a sales or purchase invoice. Two record shapes coexist:
// itemized invoices carry Items and derive their amounts from them; aggregate
// (legacy) invoices carry only NetAmount/VatAmount/TotalAmount with no
// explicit rate. IsItemized distinguishes the shapes.
type Invoice struct {
	InvoiceID   string          `json:"invoiceID"` // Primary key (UUID)
	CompanyID   string          `json:"companyID"` // FK -> companies.company_id (NON-NULL)
	ContactName string          `json:"contactName"`
	InvoiceDate time.Time       `json:"invoiceDate"`
	Status      InvoiceStatus   `json:"status"`
	Items       []InvoiceItem   `json:"items,omitempty"`
	NetAmount   decimal.Decimal `json:"netAmount"`
	VatAmount   decimal.Decimal `json:"vatAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	AuditFields
}

// IsItemized reports whether the invoice carries explicit line items.
func (i Invoice) IsItemized() bool {
	return len(i.Items) > 0
}

// CountsForVatPeriod reports whether a sales invoice participates in a VAT
// period. Draft invoices are excluded; purchase invoices are always in scope
// regardless of status (input VAT is reclaimable once recorded) and do not
// go through this check.
func (i Invoice) CountsForVatPeriod() bool {
	switch i.Status {
	case InvoiceSent, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}
