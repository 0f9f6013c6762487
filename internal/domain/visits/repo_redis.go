package visits

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/homeoclinic/clinic-api/internal/platform/kvstore"
)

// CollectionKey is the kvstore key holding the visit list.
const CollectionKey = "visits"

type redisRepository struct {
	store *kvstore.Store
}

// NewRedisRepository creates a visit repository over the kvstore.
func NewRedisRepository(store *kvstore.Store) Repository {
	return &redisRepository{store: store}
}

// sortByDateDesc orders newest-first. Dates are plain YYYY-MM-DD strings,
// so lexicographic comparison is chronological.
func sortByDateDesc(items []Visit) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})
}

func (r *redisRepository) List(ctx context.Context) ([]Visit, error) {
	items, err := kvstore.Read[Visit](ctx, r.store, CollectionKey)
	if err != nil {
		return nil, err
	}
	sortByDateDesc(items)
	return items, nil
}

func (r *redisRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Visit, error) {
	items, err := kvstore.Read[Visit](ctx, r.store, CollectionKey)
	if err != nil {
		return nil, err
	}
	var out []Visit
	for _, v := range items {
		if v.PatientID == patientID {
			out = append(out, v)
		}
	}
	sortByDateDesc(out)
	return out, nil
}

func (r *redisRepository) GetByID(ctx context.Context, id uuid.UUID) (*Visit, error) {
	items, err := kvstore.Read[Visit](ctx, r.store, CollectionKey)
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

func (r *redisRepository) Create(ctx context.Context, c CreateVisit) (*Visit, error) {
	v := Visit{
		ID:           uuid.New(),
		PatientID:    c.PatientID,
		Date:         c.Date,
		Symptoms:     c.Symptoms,
		Diagnosis:    c.Diagnosis,
		Prescription: c.Prescription,
		Notes:        c.Notes,
		Fees:         c.Fees,
		NextFollowUp: c.NextFollowUp,
	}
	if v.Prescription == nil {
		v.Prescription = []PrescriptionItem{}
	}
	err := kvstore.Mutate(ctx, r.store, CollectionKey, func(items []Visit) ([]Visit, error) {
		return append(items, v), nil
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// DeleteByPatient rewrites the collection without the patient's visits.
// It runs ahead of the patient delete so an interruption between the two
// writes can never leave visits referencing a missing patient.
func (r *redisRepository) DeleteByPatient(ctx context.Context, patientID uuid.UUID) error {
	return kvstore.Mutate(ctx, r.store, CollectionKey, func(items []Visit) ([]Visit, error) {
		next := items[:0]
		for _, v := range items {
			if v.PatientID != patientID {
				next = append(next, v)
			}
		}
		return next, nil
	})
}

func (r *redisRepository) Count(ctx context.Context) (int, error) {
	items, err := kvstore.Read[Visit](ctx, r.store, CollectionKey)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (r *redisRepository) SumFees(ctx context.Context) (float64, error) {
	items, err := kvstore.Read[Visit](ctx, r.store, CollectionKey)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, v := range items {
		total += float64(v.Fees)
	}
	return total, nil
}
