package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CardDataRow struct {
	NumberOfInvoices  int
	NumberOfCustomers int
	TotalPaid         int64
	TotalPending      int64
}

type LatestInvoiceRow struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	ImageURL      string
	Amount        int64
}

type RevenueRow struct {
	Month   string
	Revenue int
}

type DashboardRepo struct {
	db *pgxpool.Pool
}

func NewDashboardRepo(db *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{db: db}
}

func (r *DashboardRepo) CardData(ctx context.Context) (*CardDataRow, error) {
	const q = `
SELECT
  (SELECT COUNT(*) FROM invoices),
  (SELECT COUNT(*) FROM customers),
  (SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = 'paid'),
  (SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = 'pending');
`
	var out CardDataRow
	if err := r.db.QueryRow(ctx, q).Scan(
		&out.NumberOfInvoices, &out.NumberOfCustomers, &out.TotalPaid, &out.TotalPending,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *DashboardRepo) LatestInvoices(ctx context.Context, limit int) ([]LatestInvoiceRow, error) {
	const q = `
SELECT i.id::text, c.name, c.email, c.image_url, i.amount
FROM invoices i
JOIN customers c ON c.id = i.customer_id
ORDER BY i.date DESC
LIMIT $1;
`
	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LatestInvoiceRow, 0, limit)
	for rows.Next() {
		var v LatestInvoiceRow
		if err := rows.Scan(&v.ID, &v.CustomerName, &v.CustomerEmail, &v.ImageURL, &v.Amount); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *DashboardRepo) Revenue(ctx context.Context) ([]RevenueRow, error) {
	const q = `
SELECT month, revenue
FROM revenue
ORDER BY month ASC;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RevenueRow, 0, 12)
	for rows.Next() {
		var v RevenueRow
		if err := rows.Scan(&v.Month, &v.Revenue); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
