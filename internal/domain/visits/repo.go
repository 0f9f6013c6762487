package visits

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the storage contract for visits. Visits are append-only,
// so there is no update or single-record delete; DeleteByPatient exists
// only to serve the patient cascade.
type Repository interface {
	List(ctx context.Context) ([]Visit, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Visit, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Visit, error)
	Create(ctx context.Context, c CreateVisit) (*Visit, error)
	DeleteByPatient(ctx context.Context, patientID uuid.UUID) error
	Count(ctx context.Context) (int, error)
	SumFees(ctx context.Context) (float64, error)
}

// PatientDirectory answers whether a patient id is known. It is the one
// cross-aggregate check visits need at create time.
type PatientDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
