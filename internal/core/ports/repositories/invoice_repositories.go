package repositories

import (
	"context"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
)

// InvoiceRepository defines persistence operations for sales and purchase
// invoices. Both the itemized and the aggregate (legacy) record shapes come
// back through the same methods; the stored shape is preserved as-is.
type InvoiceRepository interface {
	// SaveInvoice persists a new invoice with its items, atomically.
	SaveInvoice(ctx context.Context, kind domain.InvoiceKind, invoice domain.Invoice) error

	// FindInvoiceByID retrieves an invoice with its items.
	// Returns apperrors.ErrNotFound if no such invoice exists in the company.
	FindInvoiceByID(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error)

	// FindInvoicesInPeriod retrieves all invoices of the given kind dated
	// within the closed period, regardless of status. Status filtering is a
	// policy decision of the VAT calculator, not of the store.
	FindInvoicesInPeriod(ctx context.Context, companyID string, kind domain.InvoiceKind, period domain.FiscalPeriod) ([]domain.Invoice, error)

	// ListInvoices retrieves invoices of the given kind with pagination,
	// ordered by invoice date descending.
	ListInvoices(ctx context.Context, companyID string, kind domain.InvoiceKind, limit, offset int) ([]domain.Invoice, error)
}
