package inventory

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/homeoclinic/clinic-api/internal/platform/codec"
	"github.com/homeoclinic/clinic-api/internal/platform/kvstore"
)

func newRedisRepo(t *testing.T) Repository {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisRepository(kvstore.New(redis.NewClient(&redis.Options{Addr: mr.Addr()})))
}

func TestRedisList_SortedByName(t *testing.T) {
	repo := newRedisRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Nux Vomica 200", "arnica 30", "Belladonna 30"} {
		if _, err := repo.Create(ctx, CreateItem{Name: name, Kind: KindDilution}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if items[0].Name != "arnica 30" || items[1].Name != "Belladonna 30" || items[2].Name != "Nux Vomica 200" {
		t.Errorf("wrong order: %s, %s, %s", items[0].Name, items[1].Name, items[2].Name)
	}
}

func TestRedisLowStock_FlipsWithQuantityUpdate(t *testing.T) {
	repo := newRedisRepo(t)
	ctx := context.Background()

	item, err := repo.Create(ctx, CreateItem{
		Name: "Arnica 30", Kind: KindDilution, Quantity: 3, MinLevel: 5,
	})
	if err != nil {
		t.Fatal(err)
	}

	low, err := repo.CountLowStock(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if low != 1 {
		t.Fatalf("low stock = %d, want 1", low)
	}

	qty := codec.Int(10)
	if err := repo.Update(ctx, item.ID, Patch{Quantity: &qty}); err != nil {
		t.Fatal(err)
	}

	low, err = repo.CountLowStock(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if low != 0 {
		t.Errorf("low stock = %d after restock, want 0", low)
	}
}

func TestRedisLowStock_BoundaryAtEqualQuantity(t *testing.T) {
	repo := newRedisRepo(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, CreateItem{Name: "Sulphur 200", Kind: KindDilution, Quantity: 5, MinLevel: 5}); err != nil {
		t.Fatal(err)
	}

	low, err := repo.CountLowStock(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if low != 1 {
		t.Errorf("quantity equal to minLevel must count as low stock, got %d", low)
	}
}

func TestRedisUpdate_NotFound(t *testing.T) {
	repo := newRedisRepo(t)
	name := "X"
	if err := repo.Update(context.Background(), uuid.New(), Patch{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRedisDelete_NotFound(t *testing.T) {
	repo := newRedisRepo(t)
	if err := repo.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
