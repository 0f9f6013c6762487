package appointments

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/homeoclinic/clinic-api/internal/platform/kvstore"
)

// CollectionKey is the kvstore key holding the appointment list.
const CollectionKey = "appointments"

type redisRepository struct {
	store *kvstore.Store
}

// NewRedisRepository creates an appointment repository over the kvstore.
func NewRedisRepository(store *kvstore.Store) Repository {
	return &redisRepository{store: store}
}

func (r *redisRepository) List(ctx context.Context) ([]Appointment, error) {
	items, err := kvstore.Read[Appointment](ctx, r.store, CollectionKey)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		return items[i].Time < items[j].Time
	})
	return items, nil
}

func (r *redisRepository) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	items, err := kvstore.Read[Appointment](ctx, r.store, CollectionKey)
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

func (r *redisRepository) Upsert(ctx context.Context, a Appointment) (*Appointment, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	err := kvstore.Mutate(ctx, r.store, CollectionKey, func(items []Appointment) ([]Appointment, error) {
		for i := range items {
			if items[i].ID == a.ID {
				items[i] = a
				return items, nil
			}
		}
		return append(items, a), nil
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *redisRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return kvstore.Mutate(ctx, r.store, CollectionKey, func(items []Appointment) ([]Appointment, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Status = status
				return items, nil
			}
		}
		return nil, ErrNotFound
	})
}

func (r *redisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	found := false
	err := kvstore.Mutate(ctx, r.store, CollectionKey, func(items []Appointment) ([]Appointment, error) {
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
	return err
}

func (r *redisRepository) CountOnDate(ctx context.Context, date string) (int, error) {
	items, err := kvstore.Read[Appointment](ctx, r.store, CollectionKey)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, a := range items {
		if a.Date == date && a.Status != StatusCancelled {
			total++
		}
	}
	return total, nil
}
