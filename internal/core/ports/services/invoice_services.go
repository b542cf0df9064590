package services

import (
	"context"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	"github.com/jdvries-dev/boekhoud_app/internal/dto"
)

// InvoiceSvcFacade defines operations for managing sales and purchase
// invoices.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, companyID string, kind domain.InvoiceKind, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, companyID string, kind domain.InvoiceKind, limit, offset int) ([]domain.Invoice, error)
}
