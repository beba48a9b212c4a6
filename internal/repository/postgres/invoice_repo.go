package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRow struct {
	ID         string
	CustomerID string
	Amount     int64
	Status     string
	Date       time.Time
}

// InvoiceListRow is the listing projection: invoice joined with customer.
type InvoiceListRow struct {
	ID            string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	ImageURL      string
	Amount        int64
	Status        string
	Date          time.Time
}

type InvoiceRepo struct {
	db *pgxpool.Pool
}

func NewInvoiceRepo(db *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

func (r *InvoiceRepo) Insert(ctx context.Context, customerID string, amount int64, status, date string) (*InvoiceRow, error) {
	const q = `
INSERT INTO invoices (customer_id, amount, status, date)
VALUES ($1::uuid, $2, $3, $4::date)
RETURNING id::text, customer_id::text, amount, status, date;
`
	var out InvoiceRow
	if err := r.db.QueryRow(ctx, q, customerID, amount, status, date).Scan(
		&out.ID, &out.CustomerID, &out.Amount, &out.Status, &out.Date,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*InvoiceRow, error) {
	const q = `
SELECT id::text, customer_id::text, amount, status, date
FROM invoices
WHERE id = $1::uuid
LIMIT 1;
`
	var out InvoiceRow
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&out.ID, &out.CustomerID, &out.Amount, &out.Status, &out.Date,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches customer_id/amount/status only; id and date never change
// after creation.
func (r *InvoiceRepo) Update(ctx context.Context, id, customerID string, amount int64, status string) (*InvoiceRow, error) {
	const q = `
UPDATE invoices
SET customer_id = $2::uuid,
    amount = $3,
    status = $4
WHERE id = $1::uuid
RETURNING id::text, customer_id::text, amount, status, date;
`
	var out InvoiceRow
	if err := r.db.QueryRow(ctx, q, id, customerID, amount, status).Scan(
		&out.ID, &out.CustomerID, &out.Amount, &out.Status, &out.Date,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1::uuid`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// invoiceFilterClause must stay in sync between ListFiltered and CountFiltered.
const invoiceFilterClause = `
FROM invoices i
JOIN customers c ON c.id = i.customer_id
WHERE c.name ILIKE $1
   OR c.email ILIKE $1
   OR i.amount::text ILIKE $1
   OR i.date::text ILIKE $1
   OR i.status ILIKE $1
`

func (r *InvoiceRepo) ListFiltered(ctx context.Context, search string, limit, offset int) ([]InvoiceListRow, error) {
	q := `
SELECT i.id::text, i.customer_id::text, c.name, c.email, c.image_url, i.amount, i.status, i.date
` + invoiceFilterClause + `
ORDER BY i.date DESC
LIMIT $2 OFFSET $3;
`
	rows, err := r.db.Query(ctx, q, "%"+search+"%", limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]InvoiceListRow, 0, limit)
	for rows.Next() {
		var v InvoiceListRow
		if err := rows.Scan(
			&v.ID, &v.CustomerID, &v.CustomerName, &v.CustomerEmail,
			&v.ImageURL, &v.Amount, &v.Status, &v.Date,
		); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *InvoiceRepo) CountFiltered(ctx context.Context, search string) (int, error) {
	q := `SELECT COUNT(*)` + invoiceFilterClause
	var n int
	if err := r.db.QueryRow(ctx, q, "%"+search+"%").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
