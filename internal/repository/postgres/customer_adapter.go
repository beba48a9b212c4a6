package postgres

import (
	"context"

	customeruc "github.com/suyeon1218/invoice-dashboard-backend/internal/usecase/customer"
)

type CustomerStoreAdapter struct {
	repo *CustomerRepo
}

func NewCustomerStoreAdapter(repo *CustomerRepo) *CustomerStoreAdapter {
	return &CustomerStoreAdapter{repo: repo}
}

func (a *CustomerStoreAdapter) ListNames(ctx context.Context) ([]customeruc.NameRow, error) {
	rows, err := a.repo.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]customeruc.NameRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, customeruc.NameRow{ID: r.ID, Name: r.Name})
	}
	return out, nil
}

func (a *CustomerStoreAdapter) ListFiltered(ctx context.Context, search string) ([]customeruc.TableRow, error) {
	rows, err := a.repo.ListFiltered(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]customeruc.TableRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, customeruc.TableRow{
			ID:            r.ID,
			Name:          r.Name,
			Email:         r.Email,
			ImageURL:      r.ImageURL,
			TotalInvoices: r.TotalInvoices,
			TotalPending:  r.TotalPending,
			TotalPaid:     r.TotalPaid,
		})
	}
	return out, nil
}
