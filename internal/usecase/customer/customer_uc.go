package customer

import (
	"context"
	"strings"
)

type Store interface {
	ListNames(ctx context.Context) ([]NameRow, error)
	ListFiltered(ctx context.Context, search string) ([]TableRow, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

// ListNames returns all customers ordered by name, for the invoice form.
func (u *Usecase) ListNames(ctx context.Context) ([]NameRow, error) {
	return u.store.ListNames(ctx)
}

// ListFiltered matches the search string against customer name or email,
// case-insensitively. An empty search matches everyone.
func (u *Usecase) ListFiltered(ctx context.Context, search string) ([]TableRow, error) {
	return u.store.ListFiltered(ctx, strings.TrimSpace(search))
}
