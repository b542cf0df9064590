package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jdvries-dev/boekhoud_app/internal/apperrors"
	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	portsrepo "github.com/jdvries-dev/boekhoud_app/internal/core/ports/repositories"
)

// PgxInvoiceRepository persists sales and purchase invoices. Status values
// are stored as-is, including legacy Dutch strings on historical records;
// domain.ParseInvoiceStatus normalizes them on the way out.
type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, company_id, kind, contact_name, invoice_date, status, net_amount, vat_amount, total_amount, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var inv domain.Invoice
	var kind string
	var status string
	err := row.Scan(
		&inv.InvoiceID,
		&inv.CompanyID,
		&kind,
		&inv.ContactName,
		&inv.InvoiceDate,
		&status,
		&inv.NetAmount,
		&inv.VatAmount,
		&inv.TotalAmount,
		&inv.CreatedAt,
		&inv.CreatedBy,
		&inv.LastUpdatedAt,
		&inv.LastUpdatedBy,
	)
	inv.Status = domain.ParseInvoiceStatus(status)
	return inv, err
}

// SaveInvoice persists a new invoice with its items, atomically.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, kind domain.InvoiceKind, invoice domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	invoiceQuery := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, invoiceQuery,
		invoice.InvoiceID,
		invoice.CompanyID,
		kind,
		invoice.ContactName,
		invoice.InvoiceDate,
		invoice.Status,
		invoice.NetAmount,
		invoice.VatAmount,
		invoice.TotalAmount,
		invoice.CreatedAt,
		invoice.CreatedBy,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save invoice %s: %w", invoice.InvoiceID, err)
	}

	itemQuery := `
		INSERT INTO invoice_items (item_id, invoice_id, description, quantity, unit_price, vat_percentage, item_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for i, item := range invoice.Items {
		_, err = tx.Exec(ctx, itemQuery,
			item.ItemID,
			invoice.InvoiceID,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			item.VatPercentage,
			i,
		)
		if err != nil {
			return fmt.Errorf("failed to save invoice item %s: %w", item.ItemID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindInvoiceByID retrieves an invoice with its items.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE company_id = $1 AND invoice_id = $2;
	`
	invoice, err := scanInvoice(r.Pool.QueryRow(ctx, query, companyID, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
		}
		return nil, fmt.Errorf("error finding invoice %s: %w", invoiceID, err)
	}

	items, err := r.findItemsByInvoiceIDs(ctx, []string{invoiceID})
	if err != nil {
		return nil, err
	}
	invoice.Items = items[invoiceID]
	return &invoice, nil
}

// FindInvoicesInPeriod retrieves all invoices of the given kind dated within
// the closed period, regardless of status.
func (r *PgxInvoiceRepository) FindInvoicesInPeriod(ctx context.Context, companyID string, kind domain.InvoiceKind, period domain.FiscalPeriod) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE company_id = $1
			AND kind = $2
			AND invoice_date BETWEEN $3 AND $4
		ORDER BY invoice_date ASC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, kind, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("error querying period invoices: %w", err)
	}
	defer rows.Close()

	invoices, err := r.collectInvoicesWithItems(ctx, rows)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// ListInvoices retrieves invoices of the given kind with pagination,
// newest first.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, companyID string, kind domain.InvoiceKind, limit, offset int) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE company_id = $1 AND kind = $2
		ORDER BY invoice_date DESC, created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error listing invoices: %w", err)
	}
	defer rows.Close()

	invoices, err := r.collectInvoicesWithItems(ctx, rows)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) collectInvoicesWithItems(ctx context.Context, rows pgx.Rows) ([]domain.Invoice, error) {
	invoices := []domain.Invoice{}
	invoiceIDs := []string{}
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning invoice row: %w", err)
		}
		invoices = append(invoices, invoice)
		invoiceIDs = append(invoiceIDs, invoice.InvoiceID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	rows.Close()

	items, err := r.findItemsByInvoiceIDs(ctx, invoiceIDs)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		invoices[i].Items = items[invoices[i].InvoiceID]
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) findItemsByInvoiceIDs(ctx context.Context, invoiceIDs []string) (map[string][]domain.InvoiceItem, error) {
	if len(invoiceIDs) == 0 {
		return map[string][]domain.InvoiceItem{}, nil
	}

	query := `
		SELECT item_id, invoice_id, description, quantity, unit_price, vat_percentage
		FROM invoice_items
		WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, item_order ASC;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceIDs)
	if err != nil {
		return nil, fmt.Errorf("error querying invoice items: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.InvoiceItem, len(invoiceIDs))
	for rows.Next() {
		var item domain.InvoiceItem
		var invoiceID string
		if err := rows.Scan(
			&item.ItemID,
			&invoiceID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
			&item.VatPercentage,
		); err != nil {
			return nil, fmt.Errorf("error scanning invoice item row: %w", err)
		}
		result[invoiceID] = append(result[invoiceID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice item rows: %w", err)
	}
	return result, nil
}
