package invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// --- Fakes ---------------------------------------------------------------

type fakeStore struct {
	created []CreateRecord
	updated map[string]UpdateRecord
	deleted []string

	failWith error

	rows  []ListRow
	count int
}

func newFakeStore() *fakeStore {
	return &fakeStore{updated: map[string]UpdateRecord{}}
}

func (s *fakeStore) Create(_ context.Context, in CreateRecord) (*Invoice, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	s.created = append(s.created, in)
	return &Invoice{ID: "inv-1", CustomerID: in.CustomerID, Amount: in.Amount, Status: in.Status, Date: in.Date}, nil
}

func (s *fakeStore) GetByID(_ context.Context, id string) (*Invoice, error) {
	return nil, ErrNotFound
}

func (s *fakeStore) Update(_ context.Context, id string, in UpdateRecord) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.updated[id] = in
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeStore) ListFiltered(_ context.Context, _ string, limit, offset int) ([]ListRow, error) {
	if offset >= len(s.rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.rows) {
		end = len(s.rows)
	}
	return s.rows[offset:end], nil
}

func (s *fakeStore) CountFiltered(_ context.Context, _ string) (int, error) {
	return s.count, nil
}

type fakeInvalidator struct {
	paths []string
	err   error
}

func (f *fakeInvalidator) Invalidate(_ context.Context, path string) error {
	if f.err != nil {
		return f.err
	}
	f.paths = append(f.paths, path)
	return nil
}

const validCustomerID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"
const validInvoiceID = "8f2b5c1d-0a3e-4f6b-9c7d-1e2f3a4b5c6d"

func newTestUsecase(store *fakeStore, inv *fakeInvalidator) *Usecase {
	uc := New(store, inv)
	uc.now = func() time.Time {
		return time.Date(2026, 8, 29, 23, 59, 3, 0, time.UTC)
	}
	return uc
}

// --- Tests ---------------------------------------------------------------

// Create stores the amount in cents and stamps today's UTC date, then
// invalidates the listing and redirects to it.
func TestCreate_OK(t *testing.T) {
	store := newFakeStore()
	inv := &fakeInvalidator{}
	uc := newTestUsecase(store, inv)

	out, err := uc.Create(context.Background(), FormValues{
		"customerId": validCustomerID,
		"amount":     "10.99",
		"status":     "paid",
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeOk, out.Kind)
	require.Equal(t, ListingPath, out.RedirectTo)

	require.Len(t, store.created, 1)
	rec := store.created[0]
	require.Equal(t, validCustomerID, rec.CustomerID)
	require.Equal(t, int64(1099), rec.Amount)
	require.Equal(t, "paid", rec.Status)
	require.Equal(t, "2026-08-29", rec.Date)

	require.Equal(t, []string{ListingPath}, inv.paths)
}

// Validation failures return field errors and touch neither store nor cache.
func TestCreate_ValidationFailed_NoWrites(t *testing.T) {
	store := newFakeStore()
	inv := &fakeInvalidator{}
	uc := newTestUsecase(store, inv)

	out, err := uc.Create(context.Background(), FormValues{
		"customerId": "",
		"amount":     "-5",
		"status":     "paid",
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeValidationFailed, out.Kind)
	require.Equal(t, MsgCreateFailed, out.Validation.Message)
	require.Equal(t, []string{MsgSelectCustomer}, out.Validation.Fields["customerId"])
	require.Equal(t, []string{MsgAmountTooSmall}, out.Validation.Fields["amount"])

	require.Empty(t, store.created)
	require.Empty(t, inv.paths)
}

// Store errors collapse to a generic message and skip the invalidate step.
func TestCreate_PersistenceFailed(t *testing.T) {
	store := newFakeStore()
	store.failWith = errors.New("connection refused")
	inv := &fakeInvalidator{}
	uc := newTestUsecase(store, inv)

	out, err := uc.Create(context.Background(), FormValues{
		"customerId": validCustomerID,
		"amount":     "10",
		"status":     "pending",
	})
	require.NoError(t, err)
	require.Equal(t, OutcomePersistenceFailed, out.Kind)
	require.Equal(t, "Failed to create invoice.", out.Message)
	require.Empty(t, inv.paths)
}

// A failing cache must not fail the mutation: the row is already written.
func TestCreate_CacheErrorIsBestEffort(t *testing.T) {
	store := newFakeStore()
	inv := &fakeInvalidator{err: errors.New("redis down")}
	uc := newTestUsecase(store, inv)

	out, err := uc.Create(context.Background(), FormValues{
		"customerId": validCustomerID,
		"amount":     "10",
		"status":     "pending",
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeOk, out.Kind)
	require.Len(t, store.created, 1)
}

func TestUpdate_OK_DateUntouched(t *testing.T) {
	store := newFakeStore()
	inv := &fakeInvalidator{}
	uc := newTestUsecase(store, inv)

	out, err := uc.Update(context.Background(), validInvoiceID, FormValues{
		"customerId": validCustomerID,
		"amount":     "42",
		"status":     "pending",
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeOk, out.Kind)
	require.Equal(t, ListingPath, out.RedirectTo)

	rec, ok := store.updated[validInvoiceID]
	require.True(t, ok)
	require.Equal(t, int64(4200), rec.Amount)
	require.Equal(t, "pending", rec.Status)
	require.Equal(t, []string{ListingPath}, inv.paths)
}

func TestUpdate_BadID(t *testing.T) {
	uc := newTestUsecase(newFakeStore(), &fakeInvalidator{})

	_, err := uc.Update(context.Background(), "not-a-uuid", FormValues{
		"customerId": validCustomerID,
		"amount":     "42",
		"status":     "pending",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

// Unlike the original dashboard, update store errors abort before the
// invalidate/redirect step.
func TestUpdate_PersistenceFailed(t *testing.T) {
	store := newFakeStore()
	store.failWith = errors.New("boom")
	inv := &fakeInvalidator{}
	uc := newTestUsecase(store, inv)

	out, err := uc.Update(context.Background(), validInvoiceID, FormValues{
		"customerId": validCustomerID,
		"amount":     "42",
		"status":     "pending",
	})
	require.NoError(t, err)
	require.Equal(t, OutcomePersistenceFailed, out.Kind)
	require.Equal(t, "Failed to update invoice.", out.Message)
	require.Empty(t, inv.paths)
}

func TestDelete_OK(t *testing.T) {
	store := newFakeStore()
	inv := &fakeInvalidator{}
	uc := newTestUsecase(store, inv)

	out, err := uc.Delete(context.Background(), validInvoiceID)
	require.NoError(t, err)
	require.Equal(t, OutcomeOk, out.Kind)
	require.Equal(t, []string{validInvoiceID}, store.deleted)
	require.Equal(t, []string{ListingPath}, inv.paths)
}

func TestDelete_BadID(t *testing.T) {
	uc := newTestUsecase(newFakeStore(), &fakeInvalidator{})

	_, err := uc.Delete(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_PageMath(t *testing.T) {
	store := newFakeStore()
	store.count = 13
	for i := 0; i < 13; i++ {
		store.rows = append(store.rows, ListRow{ID: "inv"})
	}
	uc := newTestUsecase(store, &fakeInvalidator{})

	page, err := uc.List(context.Background(), "", 1)
	require.NoError(t, err)
	require.Len(t, page.Items, PageSize)
	require.Equal(t, 3, page.TotalPages)

	last, err := uc.List(context.Background(), "", 3)
	require.NoError(t, err)
	require.Len(t, last.Items, 1)

	// page numbers below 1 clamp to the first page
	first, err := uc.List(context.Background(), "", 0)
	require.NoError(t, err)
	require.Equal(t, 1, first.Page)
}

func TestList_NoMatches_ZeroPages(t *testing.T) {
	uc := newTestUsecase(newFakeStore(), &fakeInvalidator{})

	page, err := uc.List(context.Background(), "nonexistent-string", 1)
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Equal(t, 0, page.TotalPages)
}
