package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerNameRow struct {
	ID   string
	Name string
}

type CustomerTableRow struct {
	ID            string
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int
	TotalPending  int64
	TotalPaid     int64
}

type CustomerRepo struct {
	db *pgxpool.Pool
}

func NewCustomerRepo(db *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) ListNames(ctx context.Context) ([]CustomerNameRow, error) {
	const q = `
SELECT id::text, name
FROM customers
ORDER BY name ASC;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CustomerNameRow, 0, 32)
	for rows.Next() {
		var c CustomerNameRow
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CustomerRepo) ListFiltered(ctx context.Context, search string) ([]CustomerTableRow, error) {
	const q = `
SELECT
  c.id::text, c.name, c.email, c.image_url,
  COUNT(i.id) AS total_invoices,
  COALESCE(SUM(CASE WHEN i.status = 'pending' THEN i.amount ELSE 0 END), 0) AS total_pending,
  COALESCE(SUM(CASE WHEN i.status = 'paid' THEN i.amount ELSE 0 END), 0) AS total_paid
FROM customers c
LEFT JOIN invoices i ON c.id = i.customer_id
WHERE c.name ILIKE $1 OR c.email ILIKE $1
GROUP BY c.id, c.name, c.email, c.image_url
ORDER BY c.name ASC;
`
	rows, err := r.db.Query(ctx, q, "%"+search+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CustomerTableRow, 0, 32)
	for rows.Next() {
		var c CustomerTableRow
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.ImageURL,
			&c.TotalInvoices, &c.TotalPending, &c.TotalPaid,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
