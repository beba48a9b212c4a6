package dashboard

import "context"

// CardData backs the four summary cards. Amounts are cents.
type CardData struct {
	NumberOfInvoices  int   `json:"numberOfInvoices"`
	NumberOfCustomers int   `json:"numberOfCustomers"`
	TotalPaid         int64 `json:"totalPaid"`
	TotalPending      int64 `json:"totalPending"`
}

type LatestInvoice struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	ImageURL      string `json:"imageUrl"`
	Amount        int64  `json:"amount"`
}

type MonthlyRevenue struct {
	Month   string `json:"month"`
	Revenue int    `json:"revenue"`
}

type Store interface {
	CardData(ctx context.Context) (*CardData, error)
	LatestInvoices(ctx context.Context, limit int) ([]LatestInvoice, error)
	Revenue(ctx context.Context) ([]MonthlyRevenue, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) CardData(ctx context.Context) (*CardData, error) {
	return u.store.CardData(ctx)
}

func (u *Usecase) LatestInvoices(ctx context.Context) ([]LatestInvoice, error) {
	return u.store.LatestInvoices(ctx, 5)
}

func (u *Usecase) Revenue(ctx context.Context) ([]MonthlyRevenue, error) {
	return u.store.Revenue(ctx)
}
