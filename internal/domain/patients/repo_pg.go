package patients

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

// NewPGRepository creates a PostgreSQL-backed patient repository.
func NewPGRepository(pool db.Pool) Repository {
	return &pgRepository{db: pool}
}

const patientCols = `id, name, mobile, age, gender, blood_group, address, allergies, chronic_conditions, created_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var r Row
	err := row.Scan(&r.ID, &r.Name, &r.Mobile, &r.Age, &r.Gender,
		&r.BloodGroup, &r.Address, &r.Allergies, &r.ChronicConditions, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	p := r.ToDomain()
	return &p, nil
}

func (r *pgRepository) List(ctx context.Context) ([]Patient, error) {
	rows, err := r.db.Query(ctx, `SELECT `+patientCols+` FROM patients ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("patients: list: %w", err)
	}
	defer rows.Close()

	var items []Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("patients: scan: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func (r *pgRepository) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := scanPatient(r.db.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("patients: get %s: %w", id, err)
	}
	return p, nil
}

func (r *pgRepository) Create(ctx context.Context, c CreatePatient) (*Patient, error) {
	p := Patient{
		ID:                uuid.New(),
		Name:              c.Name,
		Mobile:            c.Mobile,
		Age:               c.Age,
		Gender:            c.Gender,
		BloodGroup:        c.BloodGroup,
		Address:           c.Address,
		Allergies:         c.Allergies,
		ChronicConditions: c.ChronicConditions,
	}
	row := p.ToRow()

	err := r.db.QueryRow(ctx, `
		INSERT INTO patients (id, name, mobile, age, gender, blood_group, address, allergies, chronic_conditions)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at`,
		row.ID, row.Name, row.Mobile, row.Age, row.Gender,
		row.BloodGroup, row.Address, row.Allergies, row.ChronicConditions,
	).Scan(&p.RegisteredDate)
	if err != nil {
		return nil, fmt.Errorf("patients: insert: %w", err)
	}
	return &p, nil
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
	if p.Mobile != nil {
		add("mobile", *p.Mobile)
	}
	if p.Age != nil {
		add("age", *p.Age)
	}
	if p.Gender != nil {
		add("gender", string(*p.Gender))
	}
	if p.BloodGroup != nil {
		add("blood_group", nullable(*p.BloodGroup))
	}
	if p.Address != nil {
		add("address", nullable(*p.Address))
	}
	if p.Allergies != nil {
		add("allergies", nullable(*p.Allergies))
	}
	if p.ChronicConditions != nil {
		add("chronic_conditions", nullable(*p.ChronicConditions))
	}

	if len(sets) == 0 {
		// Nothing to change; still report not-found for an unknown id.
		_, err := r.GetByID(ctx, id)
		return err
	}

	args = append(args, id)
	tag, err := r.db.Exec(ctx,
		fmt.Sprintf(`UPDATE patients SET %s WHERE id = $%d`, strings.Join(sets, ", "), idx),
		args...)
	if err != nil {
		return fmt.Errorf("patients: update %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the patient's visits and then the patient inside one
// transaction, so the parent can never vanish while its visits remain.
func (r *pgRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("patients: begin delete: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM visits WHERE patient_id = $1`, id); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("patients: delete visits for %s: %w", id, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("patients: delete %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		_ = tx.Rollback(ctx)
		return ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("patients: commit delete: %w", err)
	}
	return nil
}

func (r *pgRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&total); err != nil {
		return 0, fmt.Errorf("patients: count: %w", err)
	}
	return total, nil
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
