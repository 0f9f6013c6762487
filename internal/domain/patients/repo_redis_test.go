package patients

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/homeoclinic/clinic-api/internal/platform/kvstore"
)

type fakePurger struct {
	called []uuid.UUID
	err    error
}

func (f *fakePurger) DeleteByPatient(_ context.Context, id uuid.UUID) error {
	f.called = append(f.called, id)
	return f.err
}

func newRedisRepo(t *testing.T) (Repository, *fakePurger, *kvstore.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := kvstore.New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	purger := &fakePurger{}
	return NewRedisRepository(store, purger), purger, store
}

func TestRedisCreateList_SortedByName(t *testing.T) {
	repo, _, _ := newRedisRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Meera Iyer", "asha rao", "Binod Shah"} {
		if _, err := repo.Create(ctx, CreatePatient{Name: name, Mobile: "9", Gender: GenderOther}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d", len(items))
	}
	if items[0].Name != "asha rao" || items[1].Name != "Binod Shah" || items[2].Name != "Meera Iyer" {
		t.Errorf("wrong order: %s, %s, %s", items[0].Name, items[1].Name, items[2].Name)
	}
}

func TestRedisSave_SameIDReplacesInPlace(t *testing.T) {
	repo, _, _ := newRedisRepo(t)
	ctx := context.Background()

	p1, err := repo.Create(ctx, CreatePatient{Name: "Asha", Mobile: "9", Gender: GenderFemale})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(ctx, CreatePatient{Name: "Zed", Mobile: "8", Gender: GenderMale}); err != nil {
		t.Fatal(err)
	}

	updated := *p1
	updated.Mobile = "7"
	if err := repo.(*redisRepository).Save(ctx, updated); err != nil {
		t.Fatal(err)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("collection grew on save-with-existing-id: len = %d", len(items))
	}
	got, err := repo.GetByID(ctx, p1.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Mobile != "7" {
		t.Errorf("mobile = %s, want 7", got.Mobile)
	}
}

func TestRedisUpdate_NotFound(t *testing.T) {
	repo, _, _ := newRedisRepo(t)
	name := "X"
	err := repo.Update(context.Background(), uuid.New(), Patch{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRedisDelete_PurgesVisitsFirst(t *testing.T) {
	repo, purger, _ := newRedisRepo(t)
	ctx := context.Background()

	p, err := repo.Create(ctx, CreatePatient{Name: "Asha", Mobile: "9", Gender: GenderFemale})
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(purger.called) != 1 || purger.called[0] != p.ID {
		t.Errorf("visit purge not invoked: %v", purger.called)
	}
	if _, err := repo.GetByID(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Error("patient still present after delete")
	}
}

func TestRedisDelete_PurgeFailureKeepsPatient(t *testing.T) {
	repo, purger, _ := newRedisRepo(t)
	ctx := context.Background()

	p, err := repo.Create(ctx, CreatePatient{Name: "Asha", Mobile: "9", Gender: GenderFemale})
	if err != nil {
		t.Fatal(err)
	}

	purger.err = errors.New("store down")
	if err := repo.Delete(ctx, p.ID); err == nil {
		t.Fatal("expected error")
	}
	if _, err := repo.GetByID(ctx, p.ID); err != nil {
		t.Error("patient should survive a failed visit purge")
	}
}

func TestRedisDelete_NotFoundSkipsPurge(t *testing.T) {
	repo, purger, _ := newRedisRepo(t)
	if err := repo.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if len(purger.called) != 0 {
		t.Error("purge should not run for an unknown patient")
	}
}
