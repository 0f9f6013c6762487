package patients

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/homeoclinic/clinic-api/internal/platform/codec"
)

func newMockRepo(t *testing.T) (Repository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)
	return NewPGRepository(mock), mock
}

func TestPGList_OrderedByName(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := pgxmock.NewRows([]string{
		"id", "name", "mobile", "age", "gender",
		"blood_group", "address", "allergies", "chronic_conditions", "created_at",
	}).
		AddRow(uuid.New(), "Asha Rao", "9000000001", codec.Int(34), "Female",
			(*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), time.Now()).
		AddRow(uuid.New(), "Binod Shah", "9000000002", codec.Int(51), "Male",
			(*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), time.Now())

	mock.ExpectQuery(`SELECT (.+) FROM patients ORDER BY name ASC`).WillReturnRows(rows)

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Asha Rao" {
		t.Errorf("unexpected items: %+v", items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPGCreate_ReturnsPersistedPatient(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO patients`).
		WithArgs(pgxmock.AnyArg(), "Asha Rao", "9000000001", codec.Int(34), "Female",
			(*string)(nil), pgxmock.AnyArg(), (*string)(nil), (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(created))

	p, err := repo.Create(context.Background(), CreatePatient{
		Name: "Asha Rao", Mobile: "9000000001", Age: 34, Gender: GenderFemale, Address: "12 MG Road",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected generated id")
	}
	if !p.RegisteredDate.Equal(created) {
		t.Errorf("registeredDate = %v", p.RegisteredDate)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPGUpdate_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	mobile := "9000000009"

	mock.ExpectExec(`UPDATE patients SET`).
		WithArgs(mobile, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), id, Patch{Mobile: &mobile})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPGDelete_CascadesVisitsFirst(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM visits WHERE patient_id`).
		WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectExec(`DELETE FROM patients WHERE id`).
		WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPGDelete_VisitFailureStopsCascade(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM visits WHERE patient_id`).
		WithArgs(id).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), id)
	if err == nil {
		t.Fatal("expected error")
	}
	// The patient DELETE must never have been issued.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPGDelete_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM visits WHERE patient_id`).
		WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(`DELETE FROM patients WHERE id`).
		WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	if err := repo.Delete(context.Background(), id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPGCount(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM patients`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	total, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 7 {
		t.Errorf("count = %d, want 7", total)
	}
}
