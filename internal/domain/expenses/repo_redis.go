package expenses

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/homeoclinic/clinic-api/internal/platform/kvstore"
)

// CollectionKey is the kvstore key holding the expense list.
const CollectionKey = "expenses"

type redisRepository struct {
	store *kvstore.Store
}

// NewRedisRepository creates an expense repository over the kvstore.
func NewRedisRepository(store *kvstore.Store) Repository {
	return &redisRepository{store: store}
}

func (r *redisRepository) List(ctx context.Context) ([]Expense, error) {
	items, err := kvstore.Read[Expense](ctx, r.store, CollectionKey)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})
	return items, nil
}

func (r *redisRepository) Create(ctx context.Context, c CreateExpense) (*Expense, error) {
	e := Expense{
		ID:       uuid.New(),
		Title:    c.Title,
		Amount:   c.Amount,
		Category: c.Category,
		Date:     c.Date,
		Notes:    c.Notes,
	}
	err := kvstore.Mutate(ctx, r.store, CollectionKey, func(items []Expense) ([]Expense, error) {
		return append(items, e), nil
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *redisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	found := false
	return kvstore.Mutate(ctx, r.store, CollectionKey, func(items []Expense) ([]Expense, error) {
		next := items[:0]
		for _, item := range items {
			if item.ID == id {
				found = true
				continue
			}
			next = append(next, item)
		}
		if !found {
			return nil, ErrNotFound
		}
		return next, nil
	})
}
