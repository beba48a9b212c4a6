package invoice

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Invoice amounts are stored in cents.
type Invoice struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	Date       string `json:"date"` // YYYY-MM-DD
}

// ListRow is an invoice joined with its customer, as shown on the listing page.
type ListRow struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	ImageURL      string `json:"imageUrl"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
	Date          string `json:"date"`
}

type Page struct {
	Items      []ListRow `json:"items"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
}

type CreateRecord struct {
	CustomerID string
	Amount     int64
	Status     string
	Date       string
}

type UpdateRecord struct {
	CustomerID string
	Amount     int64
	Status     string
}

type OutcomeKind int

const (
	OutcomeOk OutcomeKind = iota
	OutcomeValidationFailed
	OutcomePersistenceFailed
)

// Outcome is the tagged result of a mutation. The delivery layer decides how
// to realize RedirectTo; the pipeline itself never navigates.
type Outcome struct {
	Kind       OutcomeKind
	RedirectTo string       // set when Kind == OutcomeOk
	Validation *FieldErrors // set when Kind == OutcomeValidationFailed
	Message    string       // set when Kind == OutcomePersistenceFailed
}
