package expenses

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
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

func TestPGList_NewestFirst(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := pgxmock.NewRows([]string{"id", "title", "amount", "category", "date", "notes"}).
		AddRow(uuid.New(), "Electricity", float64(850), "Utilities", "2024-02-05", (*string)(nil)).
		AddRow(uuid.New(), "Rent", float64(12000), "Rent", "2024-01-01", (*string)(nil))

	mock.ExpectQuery(`SELECT (.+) FROM expenses ORDER BY date DESC`).WillReturnRows(rows)

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].Title != "Electricity" || float64(items[1].Amount) != 12000 {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestPGCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO expenses`).
		WithArgs(pgxmock.AnyArg(), "Rent", float64(12000), "Rent", "2024-01-01", (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	e, err := repo.Create(context.Background(), CreateExpense{
		Title: "Rent", Amount: 12000, Category: "Rent", Date: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.ID == uuid.Nil {
		t.Error("expected generated id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPGDelete_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM expenses WHERE id`).
		WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := repo.Delete(context.Background(), id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
