package visits

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/homeoclinic/clinic-api/internal/platform/codec"
	"github.com/homeoclinic/clinic-api/internal/platform/db"
)

type pgRepository struct {
	db db.Pool
}

// NewPGRepository creates a PostgreSQL-backed visit repository.
func NewPGRepository(pool db.Pool) Repository {
	return &pgRepository{db: pool}
}

const visitCols = `id, patient_id, date, symptoms, diagnosis, prescription, notes, fees, next_follow_up`

// scanVisit reads one visit row. The prescription column is JSONB and is
// decoded from its raw bytes so a NULL column still yields an empty list.
func scanVisit(row pgx.Row) (*Visit, error) {
	var (
		r    Row
		raw  []byte
		fees float64
	)
	err := row.Scan(&r.ID, &r.PatientID, &r.Date, &r.Symptoms, &r.Diagnosis,
		&raw, &r.Notes, &fees, &r.NextFollowUp)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &r.Prescription); err != nil {
			return nil, fmt.Errorf("decode prescription: %w", err)
		}
	}
	r.Fees = codec.Number(fees)
	v := r.ToDomain()
	return &v, nil
}

func (r *pgRepository) collect(rows pgx.Rows) ([]Visit, error) {
	defer rows.Close()
	var items []Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("visits: scan: %w", err)
		}
		items = append(items, *v)
	}
	return items, rows.Err()
}

func (r *pgRepository) List(ctx context.Context) ([]Visit, error) {
	rows, err := r.db.Query(ctx, `SELECT `+visitCols+` FROM visits ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("visits: list: %w", err)
	}
	return r.collect(rows)
}

func (r *pgRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Visit, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+visitCols+` FROM visits WHERE patient_id = $1 ORDER BY date DESC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("visits: list for %s: %w", patientID, err)
	}
	return r.collect(rows)
}

func (r *pgRepository) GetByID(ctx context.Context, id uuid.UUID) (*Visit, error) {
	v, err := scanVisit(r.db.QueryRow(ctx, `SELECT `+visitCols+` FROM visits WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("visits: get %s: %w", id, err)
	}
	return v, nil
}

func (r *pgRepository) Create(ctx context.Context, c CreateVisit) (*Visit, error) {
	v := Visit{
		ID:           uuid.New(),
		PatientID:    c.PatientID,
		Date:         c.Date,
		Symptoms:     c.Symptoms,
		Diagnosis:    c.Diagnosis,
		Prescription: c.Prescription,
		Notes:        c.Notes,
		Fees:         c.Fees,
		NextFollowUp: c.NextFollowUp,
	}
	if v.Prescription == nil {
		v.Prescription = []PrescriptionItem{}
	}

	raw, err := json.Marshal(v.Prescription)
	if err != nil {
		return nil, fmt.Errorf("visits: encode prescription: %w", err)
	}
	row := v.ToRow()
	_, err = r.db.Exec(ctx, `
		INSERT INTO visits (id, patient_id, date, symptoms, diagnosis, prescription, notes, fees, next_follow_up)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		row.ID, row.PatientID, row.Date, row.Symptoms, row.Diagnosis,
		raw, row.Notes, float64(row.Fees), row.NextFollowUp)
	if err != nil {
		return nil, fmt.Errorf("visits: insert: %w", err)
	}
	return &v, nil
}

func (r *pgRepository) DeleteByPatient(ctx context.Context, patientID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM visits WHERE patient_id = $1`, patientID); err != nil {
		return fmt.Errorf("visits: delete for %s: %w", patientID, err)
	}
	return nil
}

func (r *pgRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM visits`).Scan(&total); err != nil {
		return 0, fmt.Errorf("visits: count: %w", err)
	}
	return total, nil
}

// SumFees scans only the fee column so the revenue query stays cheap as
// the visit history grows.
func (r *pgRepository) SumFees(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(fees), 0) FROM visits`).Scan(&total); err != nil {
		return 0, fmt.Errorf("visits: sum fees: %w", err)
	}
	return total, nil
}
