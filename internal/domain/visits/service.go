package visits

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service wraps the repository with validation and the referenced-patient
// check. Reads degrade to an empty list on backend faults.
type Service struct {
	repo     Repository
	patients PatientDirectory
	log      zerolog.Logger
}

// NewService creates a visit service.
func NewService(repo Repository, patients PatientDirectory, log zerolog.Logger) *Service {
	return &Service{repo: repo, patients: patients, log: log}
}

// List returns visits newest-first, optionally scoped to one patient.
// On a backend fault it logs and returns an empty list.
func (s *Service) List(ctx context.Context, patientID *uuid.UUID) []Visit {
	var (
		items []Visit
		err   error
	)
	if patientID != nil {
		items, err = s.repo.ListByPatient(ctx, *patientID)
	} else {
		items, err = s.repo.List(ctx)
	}
	if err != nil {
		s.log.Error().Err(err).Msg("listing visits failed")
		return []Visit{}
	}
	if items == nil {
		items = []Visit{}
	}
	return items
}

// Get returns one visit or ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Visit, error) {
	return s.repo.GetByID(ctx, id)
}

// Record validates and stores a new visit. The referenced patient must
// exist at creation time.
func (s *Service) Record(ctx context.Context, c CreateVisit) (*Visit, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	ok, err := s.patients.Exists(ctx, c.PatientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPatientNotFound
	}
	return s.repo.Create(ctx, c)
}
