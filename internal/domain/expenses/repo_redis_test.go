package expenses

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/homeoclinic/clinic-api/internal/platform/kvstore"
)

func newRedisRepo(t *testing.T) Repository {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisRepository(kvstore.New(redis.NewClient(&redis.Options{Addr: mr.Addr()})))
}

func TestRedisList_NewestFirst(t *testing.T) {
	repo := newRedisRepo(t)
	ctx := context.Background()

	for _, c := range []CreateExpense{
		{Title: "Rent", Amount: 12000, Date: "2024-01-01"},
		{Title: "Electricity", Amount: 850, Date: "2024-02-05"},
		{Title: "Stationery", Amount: 300, Date: "2024-01-20"},
	} {
		if _, err := repo.Create(ctx, c); err != nil {
			t.Fatalf("create %s: %v", c.Title, err)
		}
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if items[0].Title != "Electricity" || items[1].Title != "Stationery" || items[2].Title != "Rent" {
		t.Errorf("wrong order: %s, %s, %s", items[0].Title, items[1].Title, items[2].Title)
	}
}

func TestRedisDelete(t *testing.T) {
	repo := newRedisRepo(t)
	ctx := context.Background()

	e, err := repo.Create(ctx, CreateExpense{Title: "Rent", Amount: 12000, Date: "2024-01-01"})
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete(ctx, e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	items, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("expense still present: %+v", items)
	}
}

func TestRedisDelete_NotFound(t *testing.T) {
	repo := newRedisRepo(t)
	if err := repo.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
