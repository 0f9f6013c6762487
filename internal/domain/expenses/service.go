package expenses

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

// NewService creates an expense service.
func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List returns expenses newest-first. On a backend fault it logs and
// returns an empty list.
func (s *Service) List(ctx context.Context) []Expense {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listing expenses failed")
		return []Expense{}
	}
	if items == nil {
		items = []Expense{}
	}
	return items
}

// Record validates and stores a new expense.
func (s *Service) Record(ctx context.Context, c CreateExpense) (*Expense, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, c)
}

// Delete removes an expense.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
