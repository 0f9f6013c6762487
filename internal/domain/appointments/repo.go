package appointments

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the storage contract for appointments. Upsert replaces
// the whole record keyed by id presence; UpdateStatus is deliberately a
// narrow single-field write so confirm/cancel actions cannot clobber
// other fields with stale form state.
type Repository interface {
	List(ctx context.Context) ([]Appointment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Upsert(ctx context.Context, a Appointment) (*Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountOnDate(ctx context.Context, date string) (int, error)
}
