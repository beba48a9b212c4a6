package postgres

import (
	"context"

	dashuc "github.com/suyeon1218/invoice-dashboard-backend/internal/usecase/dashboard"
)

type DashboardStoreAdapter struct {
	repo *DashboardRepo
}

func NewDashboardStoreAdapter(repo *DashboardRepo) *DashboardStoreAdapter {
	return &DashboardStoreAdapter{repo: repo}
}

func (a *DashboardStoreAdapter) CardData(ctx context.Context) (*dashuc.CardData, error) {
	row, err := a.repo.CardData(ctx)
	if err != nil {
		return nil, err
	}
	return &dashuc.CardData{
		NumberOfInvoices:  row.NumberOfInvoices,
		NumberOfCustomers: row.NumberOfCustomers,
		TotalPaid:         row.TotalPaid,
		TotalPending:      row.TotalPending,
	}, nil
}

func (a *DashboardStoreAdapter) LatestInvoices(ctx context.Context, limit int) ([]dashuc.LatestInvoice, error) {
	rows, err := a.repo.LatestInvoices(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dashuc.LatestInvoice, 0, len(rows))
	for _, r := range rows {
		out = append(out, dashuc.LatestInvoice{
			ID:            r.ID,
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			ImageURL:      r.ImageURL,
			Amount:        r.Amount,
		})
	}
	return out, nil
}

func (a *DashboardStoreAdapter) Revenue(ctx context.Context) ([]dashuc.MonthlyRevenue, error) {
	rows, err := a.repo.Revenue(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dashuc.MonthlyRevenue, 0, len(rows))
	for _, r := range rows {
		out = append(out, dashuc.MonthlyRevenue{Month: r.Month, Revenue: r.Revenue})
	}
	return out, nil
}
