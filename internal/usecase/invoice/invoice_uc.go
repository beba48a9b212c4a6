package invoice

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// ListingPath is the route whose cached rendering every mutation invalidates
// and redirects back to.
const ListingPath = "/dashboard/invoices"

// PageSize is the fixed listing page size.
const PageSize = 6

type Store interface {
	Create(ctx context.Context, in CreateRecord) (*Invoice, error)
	GetByID(ctx context.Context, id string) (*Invoice, error)
	Update(ctx context.Context, id string, in UpdateRecord) error
	Delete(ctx context.Context, id string) error
	ListFiltered(ctx context.Context, search string, limit, offset int) ([]ListRow, error)
	CountFiltered(ctx context.Context, search string) (int, error)
}

type Invalidator interface {
	Invalidate(ctx context.Context, path string) error
}

type Usecase struct {
	store Store
	cache Invalidator
	now   func() time.Time
}

func New(store Store, cache Invalidator) *Usecase {
	return &Usecase{store: store, cache: cache, now: time.Now}
}

// Create validates the form, inserts one invoice row with the amount converted
// to cents and the date set to today (UTC, day granularity), then invalidates
// the listing cache. Store failures are logged in full and collapsed to a
// generic message.
func (u *Usecase) Create(ctx context.Context, raw FormValues) (*Outcome, error) {
	f, ferrs, err := ParseForm(raw, MsgCreateFailed)
	if err != nil {
		return nil, err
	}
	if ferrs != nil {
		return &Outcome{Kind: OutcomeValidationFailed, Validation: ferrs}, nil
	}

	rec := CreateRecord{
		CustomerID: f.CustomerID,
		Amount:     toCents(f.Amount),
		Status:     f.Status,
		Date:       u.now().UTC().Format("2006-01-02"),
	}
	if _, err := u.store.Create(ctx, rec); err != nil {
		log.Printf("database error: create invoice: %v", err)
		return &Outcome{Kind: OutcomePersistenceFailed, Message: "Failed to create invoice."}, nil
	}

	u.invalidateListing(ctx)
	return &Outcome{Kind: OutcomeOk, RedirectTo: ListingPath}, nil
}

// Update re-validates with the create shape; id and date stay immutable.
// Unlike the original dashboard, a store error here aborts before the
// invalidate/redirect step instead of being silently dropped.
func (u *Usecase) Update(ctx context.Context, id string, raw FormValues) (*Outcome, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidInput
	}

	f, ferrs, err := ParseForm(raw, MsgUpdateFailed)
	if err != nil {
		return nil, err
	}
	if ferrs != nil {
		return &Outcome{Kind: OutcomeValidationFailed, Validation: ferrs}, nil
	}

	rec := UpdateRecord{
		CustomerID: f.CustomerID,
		Amount:     toCents(f.Amount),
		Status:     f.Status,
	}
	if err := u.store.Update(ctx, id, rec); err != nil {
		log.Printf("database error: update invoice %s: %v", id, err)
		return &Outcome{Kind: OutcomePersistenceFailed, Message: "Failed to update invoice."}, nil
	}

	u.invalidateListing(ctx)
	return &Outcome{Kind: OutcomeOk, RedirectTo: ListingPath}, nil
}

func (u *Usecase) Delete(ctx context.Context, id string) (*Outcome, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidInput
	}

	if err := u.store.Delete(ctx, id); err != nil {
		log.Printf("database error: delete invoice %s: %v", id, err)
		return &Outcome{Kind: OutcomePersistenceFailed, Message: "Failed to delete invoice."}, nil
	}

	u.invalidateListing(ctx)
	return &Outcome{Kind: OutcomeOk, RedirectTo: ListingPath}, nil
}

func (u *Usecase) GetByID(ctx context.Context, id string) (*Invoice, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidInput
	}
	return u.store.GetByID(ctx, id)
}

// List returns one page of the filtered listing plus the total page count.
// An empty search matches every invoice.
func (u *Usecase) List(ctx context.Context, search string, page int) (*Page, error) {
	if page < 1 {
		page = 1
	}

	total, err := u.store.CountFiltered(ctx, search)
	if err != nil {
		return nil, err
	}

	items, err := u.store.ListFiltered(ctx, search, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}

	return &Page{
		Items:      items,
		Page:       page,
		TotalPages: (total + PageSize - 1) / PageSize,
	}, nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Invalidation is best effort: the row is already written, so a cache error
// must not fail the mutation.
func (u *Usecase) invalidateListing(ctx context.Context) {
	if err := u.cache.Invalidate(ctx, ListingPath); err != nil {
		log.Printf("cache invalidation failed for %s: %v", ListingPath, err)
	}
}
