package expenses

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the storage contract for expenses. There is no update:
// the book is append and delete only.
type Repository interface {
	List(ctx context.Context) ([]Expense, error)
	Create(ctx context.Context, c CreateExpense) (*Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
