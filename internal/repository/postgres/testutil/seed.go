package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func MustInsertUser(t *testing.T, db *pgxpool.Pool, name, email, passwordHash string) string {
	t.Helper()

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id::text
	`, name, email, passwordHash).Scan(&id)

	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func MustInsertCustomer(t *testing.T, db *pgxpool.Pool, name, email, imageURL string) string {
	t.Helper()

	uniq := fmt.Sprintf("%d", time.Now().UnixNano())
	emailUniq := fmt.Sprintf("%s.%s", uniq, email)

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO customers (name, email, image_url)
		VALUES ($1, $2, $3)
		RETURNING id::text
	`, name, emailUniq, imageURL).Scan(&id)

	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func MustInsertInvoice(t *testing.T, db *pgxpool.Pool, customerID string, amount int64, status, date string) string {
	t.Helper()

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1::uuid, $2, $3, $4::date)
		RETURNING id::text
	`, customerID, amount, status, date).Scan(&id)

	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func MustInsertRevenue(t *testing.T, db *pgxpool.Pool, month string, revenue int) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO revenue (month, revenue)
		VALUES ($1, $2)
		ON CONFLICT (month) DO UPDATE SET revenue = EXCLUDED.revenue
	`, month, revenue)

	require.NoError(t, err)
}
