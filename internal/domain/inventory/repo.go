package inventory

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the storage contract for the remedy stock.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	Create(ctx context.Context, c CreateItem) (*Item, error)
	Update(ctx context.Context, id uuid.UUID, p Patch) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountLowStock(ctx context.Context) (int, error)
}
