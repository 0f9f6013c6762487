package patients

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the patient registry contract. List returns patients
// sorted by name ascending. Delete cascades: the patient's visits go
// first, and the patient record must survive if that step fails.
type Repository interface {
	List(ctx context.Context) ([]Patient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Create(ctx context.Context, c CreatePatient) (*Patient, error)
	Update(ctx context.Context, id uuid.UUID, p Patch) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// VisitPurger removes every visit belonging to a patient. The standalone
// storage backend uses it to order the cascade ahead of the patient
// rewrite.
type VisitPurger interface {
	DeleteByPatient(ctx context.Context, patientID uuid.UUID) error
}
