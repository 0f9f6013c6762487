package inventory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/homeoclinic/clinic-api/internal/platform/kvstore"
)

// CollectionKey is the kvstore key holding the inventory list.
const CollectionKey = "inventory"

type redisRepository struct {
	store *kvstore.Store
}

// NewRedisRepository creates an inventory repository over the kvstore.
func NewRedisRepository(store *kvstore.Store) Repository {
	return &redisRepository{store: store}
}

func (r *redisRepository) List(ctx context.Context) ([]Item, error) {
	items, err := kvstore.Read[Item](ctx, r.store, CollectionKey)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

func (r *redisRepository) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	items, err := kvstore.Read[Item](ctx, r.store, CollectionKey)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *redisRepository) Create(ctx context.Context, c CreateItem) (*Item, error) {
	item := Item{
		ID:        uuid.New(),
		Name:      c.Name,
		Potency:   c.Potency,
		Kind:      c.Kind,
		Quantity:  c.Quantity,
		MinLevel:  c.MinLevel,
		UpdatedAt: time.Now().UTC(),
	}
	err := kvstore.Mutate(ctx, r.store, CollectionKey, func(items []Item) ([]Item, error) {
		return append(items, item), nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *redisRepository) Update(ctx context.Context, id uuid.UUID, p Patch) error {
	return kvstore.Mutate(ctx, r.store, CollectionKey, func(items []Item) ([]Item, error) {
		for i := range items {
			if items[i].ID == id {
				p.apply(&items[i])
				items[i].UpdatedAt = time.Now().UTC()
				return items, nil
			}
		}
		return nil, ErrNotFound
	})
}

func (r *redisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	found := false
	return kvstore.Mutate(ctx, r.store, CollectionKey, func(items []Item) ([]Item, error) {
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

func (r *redisRepository) CountLowStock(ctx context.Context) (int, error) {
	items, err := kvstore.Read[Item](ctx, r.store, CollectionKey)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, item := range items {
		if item.LowStock() {
			total++
		}
	}
	return total, nil
}
