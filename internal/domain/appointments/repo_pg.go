package appointments

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/homeoclinic/clinic-api/internal/platform/db"
)

type pgRepository struct {
	db db.Pool
}

// NewPGRepository creates a PostgreSQL-backed appointment repository.
func NewPGRepository(pool db.Pool) Repository {
	return &pgRepository{db: pool}
}

const appointmentCols = `id, patient_name, patient_id, mobile, date, time, status, type, notes`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var r Row
	err := row.Scan(&r.ID, &r.PatientName, &r.PatientID, &r.Mobile,
		&r.Date, &r.Time, &r.Status, &r.Kind, &r.Notes)
	if err != nil {
		return nil, err
	}
	a := r.ToDomain()
	return &a, nil
}

func (r *pgRepository) List(ctx context.Context) ([]Appointment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+appointmentCols+` FROM appointments ORDER BY date ASC, time ASC`)
	if err != nil {
		return nil, fmt.Errorf("appointments: list: %w", err)
	}
	defer rows.Close()

	var items []Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("appointments: scan: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

func (r *pgRepository) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := scanAppointment(r.db.QueryRow(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("appointments: get %s: %w", id, err)
	}
	return a, nil
}

// Upsert inserts when the appointment carries no id and fully replaces
// the row otherwise.
func (r *pgRepository) Upsert(ctx context.Context, a Appointment) (*Appointment, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	row := a.ToRow()
	_, err := r.db.Exec(ctx, `
		INSERT INTO appointments (id, patient_name, patient_id, mobile, date, time, status, type, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET
			patient_name = EXCLUDED.patient_name,
			patient_id   = EXCLUDED.patient_id,
			mobile       = EXCLUDED.mobile,
			date         = EXCLUDED.date,
			time         = EXCLUDED.time,
			status       = EXCLUDED.status,
			type         = EXCLUDED.type,
			notes        = EXCLUDED.notes`,
		row.ID, row.PatientName, row.PatientID, row.Mobile,
		row.Date, row.Time, row.Status, row.Kind, row.Notes)
	if err != nil {
		return nil, fmt.Errorf("appointments: upsert %s: %w", a.ID, err)
	}
	return &a, nil
}

func (r *pgRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE appointments SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("appointments: update status %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("appointments: delete %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountOnDate counts the day's active appointments; cancellations do not
// show up on the dashboard.
func (r *pgRepository) CountOnDate(ctx context.Context, date string) (int, error) {
	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointments WHERE date = $1 AND status <> $2`,
		date, string(StatusCancelled)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("appointments: count on %s: %w", date, err)
	}
	return total, nil
}
