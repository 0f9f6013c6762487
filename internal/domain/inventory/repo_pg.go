package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/homeoclinic/clinic-api/internal/platform/db"
)

type pgRepository struct {
	db db.Pool
}

// NewPGRepository creates a PostgreSQL-backed inventory repository.
func NewPGRepository(pool db.Pool) Repository {
	return &pgRepository{db: pool}
}

const itemCols = `id, name, potency, type, quantity, min_level, updated_at`

func scanItem(row pgx.Row) (*Item, error) {
	var r Row
	err := row.Scan(&r.ID, &r.Name, &r.Potency, &r.Kind, &r.Quantity, &r.MinLevel, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	i := r.ToDomain()
	return &i, nil
}

func (r *pgRepository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itemCols+` FROM inventory ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("inventory: list: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("inventory: scan: %w", err)
		}
		items = append(items, *i)
	}
	return items, rows.Err()
}

func (r *pgRepository) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	i, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemCols+` FROM inventory WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("inventory: get %s: %w", id, err)
	}
	return i, nil
}

func (r *pgRepository) Create(ctx context.Context, c CreateItem) (*Item, error) {
	i := Item{
		ID:       uuid.New(),
		Name:     c.Name,
		Potency:  c.Potency,
		Kind:     c.Kind,
		Quantity: c.Quantity,
		MinLevel: c.MinLevel,
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO inventory (id, name, potency, type, quantity, min_level, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,NOW())
		RETURNING updated_at`,
		i.ID, i.Name, i.Potency, string(i.Kind), i.Quantity, i.MinLevel,
	).Scan(&i.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inventory: insert: %w", err)
	}
	return &i, nil
}

func (r *pgRepository) Update(ctx context.Context, id uuid.UUID, p Patch) error {
	var sets []string
	var args []interface{}
	idx := 1

	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, val)
		idx++
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Potency != nil {
		add("potency", *p.Potency)
	}
	if p.Kind != nil {
		add("type", string(*p.Kind))
	}
	if p.Quantity != nil {
		add("quantity", *p.Quantity)
	}
	if p.MinLevel != nil {
		add("min_level", *p.MinLevel)
	}

	if len(sets) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	tag, err := r.db.Exec(ctx,
		fmt.Sprintf(`UPDATE inventory SET %s WHERE id = $%d`, strings.Join(sets, ", "), idx),
		args...)
	if err != nil {
		return fmt.Errorf("inventory: update %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("inventory: delete %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountLowStock projects only the two columns the threshold needs.
func (r *pgRepository) CountLowStock(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventory WHERE quantity <= min_level`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("inventory: count low stock: %w", err)
	}
	return total, nil
}
