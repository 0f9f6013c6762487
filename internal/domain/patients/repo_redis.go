package patients

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/homeoclinic/clinic-api/internal/platform/kvstore"
)

// CollectionKey is the kvstore key holding the patient list.
const CollectionKey = "patients"

type redisRepository struct {
	store  *kvstore.Store
	visits VisitPurger
}

// NewRedisRepository creates a patient repository over the kvstore.
// visits handles the cascade ahead of the patient rewrite.
func NewRedisRepository(store *kvstore.Store, visits VisitPurger) Repository {
	return &redisRepository{store: store, visits: visits}
}

func (r *redisRepository) List(ctx context.Context) ([]Patient, error) {
	items, err := kvstore.Read[Patient](ctx, r.store, CollectionKey)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

func (r *redisRepository) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	items, err := kvstore.Read[Patient](ctx, r.store, CollectionKey)
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

func (r *redisRepository) Create(ctx context.Context, c CreatePatient) (*Patient, error) {
	p := Patient{
		ID:                uuid.New(),
		Name:              c.Name,
		Mobile:            c.Mobile,
		Age:               c.Age,
		Gender:            c.Gender,
		BloodGroup:        c.BloodGroup,
		Address:           c.Address,
		Allergies:         c.Allergies,
		ChronicConditions: c.ChronicConditions,
		RegisteredDate:    time.Now().UTC(),
	}
	if err := r.Save(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save upserts by id: an existing entry is replaced in place, preserving
// its position; otherwise the patient is appended.
func (r *redisRepository) Save(ctx context.Context, p Patient) error {
	return kvstore.Mutate(ctx, r.store, CollectionKey, func(items []Patient) ([]Patient, error) {
		for i := range items {
			if items[i].ID == p.ID {
				items[i] = p
				return items, nil
			}
		}
		return append(items, p), nil
	})
}

func (r *redisRepository) Update(ctx context.Context, id uuid.UUID, p Patch) error {
	return kvstore.Mutate(ctx, r.store, CollectionKey, func(items []Patient) ([]Patient, error) {
		for i := range items {
			if items[i].ID == id {
				p.apply(&items[i])
				return items, nil
			}
		}
		return nil, ErrNotFound
	})
}

// Delete removes the patient's visits first, then the patient. If the
// visit rewrite fails the patient record stays, so an interruption can
// never leave visits pointing at a deleted patient.
func (r *redisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	if err := r.visits.DeleteByPatient(ctx, id); err != nil {
		return err
	}
	return kvstore.Mutate(ctx, r.store, CollectionKey, func(items []Patient) ([]Patient, error) {
		next := items[:0]
		for _, item := range items {
			if item.ID != id {
				next = append(next, item)
			}
		}
		return next, nil
	})
}

func (r *redisRepository) Count(ctx context.Context) (int, error) {
	items, err := kvstore.Read[Patient](ctx, r.store, CollectionKey)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
