package dto

import (
	"time"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceItemRequest is one itemized line of a new invoice.
type CreateInvoiceItemRequest struct {
	Description   string          `json:"description" binding:"max=200"`
	Quantity      decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice     decimal.Decimal `json:"unitPrice" binding:"required"`
	VatPercentage decimal.Decimal `json:"vatPercentage"`
}

// CreateInvoiceRequest is the payload for creating an invoice. Either Items
// or the aggregate amounts must be supplied; new records are expected to be
// itemized, the aggregate shape exists for imports of historical data.
type CreateInvoiceRequest struct {
	ContactName string                     `json:"contactName" binding:"required,max=100"`
	InvoiceDate time.Time                  `json:"invoiceDate" binding:"required" time_format:"2006-01-02"`
	Status      string                     `json:"status" binding:"required"`
	Items       []CreateInvoiceItemRequest `json:"items" binding:"omitempty,dive"`
	NetAmount   decimal.Decimal            `json:"netAmount"`
	VatAmount   decimal.Decimal            `json:"vatAmount"`
	TotalAmount decimal.Decimal            `json:"totalAmount"`
}

// InvoiceItemResponse represents an invoice item in API responses.
type InvoiceItemResponse struct {
	ItemID        string          `json:"itemID"`
	Description   string          `json:"description,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	VatPercentage decimal.Decimal `json:"vatPercentage"`
}

// InvoiceResponse represents an invoice in API responses.
type InvoiceResponse struct {
	InvoiceID   string                `json:"invoiceID"`
	CompanyID   string                `json:"companyID"`
	ContactName string                `json:"contactName"`
	InvoiceDate string                `json:"invoiceDate"`
	Status      string                `json:"status"`
	Items       []InvoiceItemResponse `json:"items,omitempty"`
	NetAmount   decimal.Decimal       `json:"netAmount"`
	VatAmount   decimal.Decimal       `json:"vatAmount"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
}

// ListInvoicesResponse wraps a page of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ToInvoiceResponse converts a domain invoice to its response DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:   inv.InvoiceID,
		CompanyID:   inv.CompanyID,
		ContactName: inv.ContactName,
		InvoiceDate: inv.InvoiceDate.Format("2006-01-02"),
		Status:      string(inv.Status),
		NetAmount:   inv.NetAmount,
		VatAmount:   inv.VatAmount,
		TotalAmount: inv.TotalAmount,
	}
	for i := range inv.Items {
		it := &inv.Items[i]
		resp.Items = append(resp.Items, InvoiceItemResponse{
			ItemID:        it.ItemID,
			Description:   it.Description,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			VatPercentage: it.VatPercentage,
		})
	}
	return resp
}

// ToListInvoicesResponse converts a slice of domain invoices.
func ToListInvoicesResponse(invoices []domain.Invoice) ListInvoicesResponse {
	resp := ListInvoicesResponse{Invoices: make([]InvoiceResponse, 0, len(invoices))}
	for i := range invoices {
		resp.Invoices = append(resp.Invoices, ToInvoiceResponse(&invoices[i]))
	}
	return resp
}
