package patients

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service wraps the repository with validation and the degrade-on-read
// policy: a failed list is logged and comes back empty rather than
// surfacing a backend fault to the UI.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService creates a patient service.
func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List returns all patients sorted by name. On a backend fault it logs
// and returns an empty list.
func (s *Service) List(ctx context.Context) []Patient {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listing patients failed")
		return []Patient{}
	}
	if items == nil {
		items = []Patient{}
	}
	return items
}

// Get returns one patient or ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// Register validates and stores a new patient.
func (s *Service) Register(ctx context.Context, c CreatePatient) (*Patient, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, c)
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, id uuid.UUID, p Patch) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, p)
}

// Delete removes a patient and their visit history.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
