package kvstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type widget struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	return New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestRead_MissingKeyIsEmpty(t *testing.T) {
	s := newTestStore(t)
	items, err := Read[widget](context.Background(), s, "widgets")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty collection, got %d items", len(items))
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in := []widget{{ID: "a", Count: 1}, {ID: "b", Count: 2}}
	if err := Write(ctx, s, "widgets", in); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := Read[widget](ctx, s, "widgets")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestMutate_AbortsWithoutWriting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := Write(ctx, s, "widgets", []widget{{ID: "a"}}); err != nil {
		t.Fatal(err)
	}

	wantErr := errors.New("boom")
	err := Mutate(ctx, s, "widgets", func(items []widget) ([]widget, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected mutate error, got %v", err)
	}

	out, err := Read[widget](ctx, s, "widgets")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Errorf("collection modified despite aborted mutation: %+v", out)
	}
}

func TestMutate_ConcurrentIncrementsDoNotLoseUpdates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := Write(ctx, s, "widgets", []widget{{ID: "a", Count: 0}}); err != nil {
		t.Fatal(err)
	}

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = Mutate(ctx, s, "widgets", func(items []widget) ([]widget, error) {
				items[0].Count++
				return items, nil
			})
		}()
	}
	wg.Wait()

	out, err := Read[widget](ctx, s, "widgets")
	if err != nil {
		t.Fatal(err)
	}
	if out[0].Count != n {
		t.Errorf("lost updates: count = %d, want %d", out[0].Count, n)
	}
}
