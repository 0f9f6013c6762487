package appointments

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service wraps the repository with validation. Reads degrade to an
// empty list on backend faults.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService creates an appointment service.
func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List returns appointments ordered by date then time. On a backend
// fault it logs and returns an empty list.
func (s *Service) List(ctx context.Context) []Appointment {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listing appointments failed")
		return []Appointment{}
	}
	if items == nil {
		items = []Appointment{}
	}
	return items
}

// Get returns one appointment or ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// Save upserts an appointment: no id means create, an id means full
// replace.
func (s *Service) Save(ctx context.Context, a Appointment) (*Appointment, error) {
	a.Normalize()
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, a)
}

// Book records an online booking from the public form. Status and kind
// are fixed here rather than trusted from the request.
func (s *Service) Book(ctx context.Context, a Appointment) (*Appointment, error) {
	a.ID = uuid.Nil
	a.Status = StatusPending
	a.Kind = KindOnline
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, a)
}

// SetStatus changes only the status field.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Delete removes an appointment.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
