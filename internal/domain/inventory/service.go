package inventory

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

// NewService creates an inventory service.
func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List returns all stock items sorted by name. On a backend fault it
// logs and returns an empty list.
func (s *Service) List(ctx context.Context) []Item {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listing inventory failed")
		return []Item{}
	}
	if items == nil {
		items = []Item{}
	}
	return items
}

// Get returns one item or ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

// Stock validates and stores a new item.
func (s *Service) Stock(ctx context.Context, c CreateItem) (*Item, error) {
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

// Delete removes an item.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
