package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jdvries-dev/boekhoud_app/internal/apperrors"
	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	portsrepo "github.com/jdvries-dev/boekhoud_app/internal/core/ports/repositories"
	portssvc "github.com/jdvries-dev/boekhoud_app/internal/core/ports/services"
	"github.com/jdvries-dev/boekhoud_app/internal/dto"
	"github.com/shopspring/decimal"
)

// invoiceService implements the InvoiceSvcFacade interface.
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepository
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithInvoiceCompanyAuthorizer sets the company authorizer for the invoice service.
func WithInvoiceCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.CompanyAuthorizer = authorizer
	}
}

// NewInvoiceService creates a new invoice service with the provided options
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepository, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo: invoiceRepo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// CreateInvoice creates a new sales or purchase invoice. Itemized requests
// derive their aggregate amounts from the items; aggregate-only requests are
// stored as-is (used when importing historical records).
func (s *invoiceService) CreateInvoice(ctx context.Context, companyID string, kind domain.InvoiceKind, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}

	if len(req.Items) == 0 && req.TotalAmount.IsZero() && req.NetAmount.IsZero() {
		return nil, fmt.Errorf("%w: invoice needs items or aggregate amounts", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	invoice := domain.Invoice{
		InvoiceID:   uuid.NewString(),
		CompanyID:   companyID,
		ContactName: req.ContactName,
		InvoiceDate: req.InvoiceDate,
		Status:      domain.ParseInvoiceStatus(req.Status),
		NetAmount:   req.NetAmount.Round(2),
		VatAmount:   req.VatAmount.Round(2),
		TotalAmount: req.TotalAmount.Round(2),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if len(req.Items) > 0 {
		net := decimal.Zero
		vat := decimal.Zero
		for _, itemReq := range req.Items {
			item := domain.InvoiceItem{
				ItemID:        uuid.NewString(),
				Description:   itemReq.Description,
				Quantity:      itemReq.Quantity,
				UnitPrice:     itemReq.UnitPrice,
				VatPercentage: itemReq.VatPercentage,
			}
			invoice.Items = append(invoice.Items, item)

			base := item.Quantity.Mul(item.UnitPrice).Round(2)
			net = net.Add(base)
			vat = vat.Add(base.Mul(item.VatPercentage).Div(decimal.NewFromInt(100)).Round(2))
		}
		invoice.NetAmount = net.Round(2)
		invoice.VatAmount = vat.Round(2)
		invoice.TotalAmount = net.Add(vat).Round(2)
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, kind, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice",
			slog.String("company_id", companyID),
			slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("company_id", companyID),
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("kind", string(kind)))
	return &invoice, nil
}

// GetInvoiceByID retrieves an invoice with its items.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, companyID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	return invoice, nil
}

// ListInvoices retrieves invoices of the given kind with pagination.
func (s *invoiceService) ListInvoices(ctx context.Context, companyID string, kind domain.InvoiceKind, limit, offset int) ([]domain.Invoice, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	invoices, err := s.invoiceRepo.ListInvoices(ctx, companyID, kind, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices",
			slog.String("company_id", companyID),
			slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}
