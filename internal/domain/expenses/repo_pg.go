package expenses

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/homeoclinic/clinic-api/internal/platform/codec"
	"github.com/homeoclinic/clinic-api/internal/platform/db"
)

type pgRepository struct {
	db db.Pool
}

// NewPGRepository creates a PostgreSQL-backed expense repository.
func NewPGRepository(pool db.Pool) Repository {
	return &pgRepository{db: pool}
}

const expenseCols = `id, title, amount, category, date, notes`

func scanExpense(row pgx.Row) (*Expense, error) {
	var (
		r      Row
		amount float64
	)
	if err := row.Scan(&r.ID, &r.Title, &amount, &r.Category, &r.Date, &r.Notes); err != nil {
		return nil, err
	}
	r.Amount = codec.Number(amount)
	e := r.ToDomain()
	return &e, nil
}

func (r *pgRepository) List(ctx context.Context) ([]Expense, error) {
	rows, err := r.db.Query(ctx, `SELECT `+expenseCols+` FROM expenses ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("expenses: list: %w", err)
	}
	defer rows.Close()

	var items []Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("expenses: scan: %w", err)
		}
		items = append(items, *e)
	}
	return items, rows.Err()
}

func (r *pgRepository) Create(ctx context.Context, c CreateExpense) (*Expense, error) {
	e := Expense{
		ID:       uuid.New(),
		Title:    c.Title,
		Amount:   c.Amount,
		Category: c.Category,
		Date:     c.Date,
		Notes:    c.Notes,
	}
	row := e.ToRow()
	_, err := r.db.Exec(ctx, `
		INSERT INTO expenses (id, title, amount, category, date, notes)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		row.ID, row.Title, float64(row.Amount), row.Category, row.Date, row.Notes)
	if err != nil {
		return nil, fmt.Errorf("expenses: insert: %w", err)
	}
	return &e, nil
}

func (r *pgRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("expenses: delete %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
