package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	invoiceuc "github.com/suyeon1218/invoice-dashboard-backend/internal/usecase/invoice"
)

// InvoiceStoreAdapter maps repository rows into usecase types and repository
// errors into usecase sentinels.
type InvoiceStoreAdapter struct {
	repo *InvoiceRepo
}

func NewInvoiceStoreAdapter(repo *InvoiceRepo) *InvoiceStoreAdapter {
	return &InvoiceStoreAdapter{repo: repo}
}

func (a *InvoiceStoreAdapter) Create(ctx context.Context, in invoiceuc.CreateRecord) (*invoiceuc.Invoice, error) {
	row, err := a.repo.Insert(ctx, in.CustomerID, in.Amount, in.Status, in.Date)
	if err != nil {
		return nil, err
	}
	return mapInvoice(row), nil
}

func (a *InvoiceStoreAdapter) GetByID(ctx context.Context, id string) (*invoiceuc.Invoice, error) {
	row, err := a.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invoiceuc.ErrNotFound
		}
		return nil, err
	}
	return mapInvoice(row), nil
}

func (a *InvoiceStoreAdapter) Update(ctx context.Context, id string, in invoiceuc.UpdateRecord) error {
	_, err := a.repo.Update(ctx, id, in.CustomerID, in.Amount, in.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoiceuc.ErrNotFound
		}
		return err
	}
	return nil
}

func (a *InvoiceStoreAdapter) Delete(ctx context.Context, id string) error {
	if err := a.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoiceuc.ErrNotFound
		}
		return err
	}
	return nil
}

func (a *InvoiceStoreAdapter) ListFiltered(ctx context.Context, search string, limit, offset int) ([]invoiceuc.ListRow, error) {
	rows, err := a.repo.ListFiltered(ctx, search, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]invoiceuc.ListRow, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		out = append(out, invoiceuc.ListRow{
			ID:            r.ID,
			CustomerID:    r.CustomerID,
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			ImageURL:      r.ImageURL,
			Amount:        r.Amount,
			Status:        r.Status,
			Date:          r.Date.Format("2006-01-02"),
		})
	}
	return out, nil
}

func (a *InvoiceStoreAdapter) CountFiltered(ctx context.Context, search string) (int, error) {
	return a.repo.CountFiltered(ctx, search)
}

func mapInvoice(r *InvoiceRow) *invoiceuc.Invoice {
	return &invoiceuc.Invoice{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Amount:     r.Amount,
		Status:     r.Status,
		Date:       r.Date.Format("2006-01-02"),
	}
}
