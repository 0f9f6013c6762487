package patients

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// mockRepo is a map-backed repository double.
type mockRepo struct {
	items   map[uuid.UUID]Patient
	listErr error
	deleted []uuid.UUID
}

func newMockRepoStore() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]Patient)}
}

func (m *mockRepo) List(context.Context) ([]Patient, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]Patient, 0, len(m.items))
	for _, p := range m.items {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *mockRepo) Create(_ context.Context, c CreatePatient) (*Patient, error) {
	p := Patient{ID: uuid.New(), Name: c.Name, Mobile: c.Mobile, Age: c.Age, Gender: c.Gender}
	m.items[p.ID] = p
	return &p, nil
}

func (m *mockRepo) Update(_ context.Context, id uuid.UUID, patch Patch) error {
	p, ok := m.items[id]
	if !ok {
		return ErrNotFound
	}
	patch.apply(&p)
	m.items[id] = p
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockRepo) Count(context.Context) (int, error) { return len(m.items), nil }

func TestServiceList_DegradesToEmptyOnError(t *testing.T) {
	repo := newMockRepoStore()
	repo.listErr = errors.New("backend down")
	svc := NewService(repo, zerolog.Nop())

	items := svc.List(context.Background())
	if items == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Errorf("len = %d, want 0", len(items))
	}
}

func TestServiceList_EmptyStoreYieldsEmptySlice(t *testing.T) {
	svc := NewService(newMockRepoStore(), zerolog.Nop())
	if items := svc.List(context.Background()); items == nil {
		t.Error("expected non-nil slice for empty store")
	}
}

func TestServiceRegister_RejectsInvalid(t *testing.T) {
	repo := newMockRepoStore()
	svc := NewService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), CreatePatient{Mobile: "9", Gender: GenderMale}); !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Error("invalid patient must not be stored")
	}
}

func TestServiceUpdate_RejectsInvalidPatch(t *testing.T) {
	repo := newMockRepoStore()
	svc := NewService(repo, zerolog.Nop())
	p, _ := repo.Create(context.Background(), CreatePatient{Name: "Asha", Mobile: "9", Gender: GenderFemale})

	bad := Gender("Unknown")
	if err := svc.Update(context.Background(), p.ID, Patch{Gender: &bad}); !errors.Is(err, ErrInvalidGender) {
		t.Errorf("expected ErrInvalidGender, got %v", err)
	}
	if repo.items[p.ID].Gender != GenderFemale {
		t.Error("invalid patch must not be applied")
	}
}

func TestServiceDelete_Propagates(t *testing.T) {
	repo := newMockRepoStore()
	svc := NewService(repo, zerolog.Nop())
	p, _ := repo.Create(context.Background(), CreatePatient{Name: "Asha", Mobile: "9", Gender: GenderFemale})

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(context.Background(), p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
