package customer

// NameRow feeds the customer dropdown on the invoice form.
type NameRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TableRow is one line of the customers table: the customer plus aggregate
// invoice totals (cents).
type TableRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"imageUrl"`
	TotalInvoices int    `json:"totalInvoices"`
	TotalPending  int64  `json:"totalPending"`
	TotalPaid     int64  `json:"totalPaid"`
}
