package grocery

import (
	"context"
	"errors"
	"testing"
	"time"

	"nutriplan/internal/mealplan"
)

type fakeListStore struct {
	stored  *StoredList
	saved   []*List
	updated []*List
	deleted []int64
	nextID  int64
}

func (f *fakeListStore) Save(ctx context.Context, userID string, planID int64, list *List) (int64, error) {
	f.saved = append(f.saved, list)
	f.nextID++
	f.stored = &StoredList{ID: f.nextID, UserID: userID, PlanID: planID, List: *list}
	return f.nextID, nil
}

func (f *fakeListStore) GetLatestByUserID(ctx context.Context, userID string) (*StoredList, error) {
	return f.stored, nil
}

func (f *fakeListStore) Update(ctx context.Context, id int64, list *List) error {
	f.updated = append(f.updated, list)
	return nil
}

func (f *fakeListStore) DeleteByPlanID(ctx context.Context, planID int64) error {
	f.deleted = append(f.deleted, planID)
	return nil
}

type fakePlanSource struct {
	plan *mealplan.Stored
	err  error
}

func (f *fakePlanSource) LatestByUserID(ctx context.Context, userID string) (*mealplan.Stored, error) {
	return f.plan, f.err
}

func storedPlan() *mealplan.Stored {
	return &mealplan.Stored{
		ID:     42,
		UserID: "user-1",
		Plan:   *planWithMeals(map[string][]string{"dinner": {"6 oz salmon fillet", "1 cup rice"}}),
	}
}

func TestGetOrDerive(t *testing.T) {
	ctx := context.Background()

	t.Run("ReturnsStoredList", func(t *testing.T) {
		store := &fakeListStore{stored: &StoredList{ID: 7, UserID: "user-1"}}
		svc := NewService(NewEngine(), store, &fakePlanSource{})

		got, err := svc.GetOrDerive(ctx, "user-1")
		if err != nil {
			t.Fatalf("GetOrDerive failed: %v", err)
		}
		if got == nil || got.ID != 7 {
			t.Errorf("Expected the stored list, got %+v", got)
		}
		if len(store.saved) != 0 {
			t.Error("Expected no derivation when a list exists")
		}
	})

	t.Run("DerivesFromLatestPlan", func(t *testing.T) {
		store := &fakeListStore{}
		svc := NewService(NewEngine(), store, &fakePlanSource{plan: storedPlan()})

		got, err := svc.GetOrDerive(ctx, "user-1")
		if err != nil {
			t.Fatalf("GetOrDerive failed: %v", err)
		}
		if got == nil {
			t.Fatal("Expected a derived list")
		}
		if got.PlanID != 42 {
			t.Errorf("Expected the list to reference plan 42, got %d", got.PlanID)
		}
		if got.List.TotalItems != 2 {
			t.Errorf("Expected 2 derived items, got %d", got.List.TotalItems)
		}
		if len(store.saved) != 1 {
			t.Errorf("Expected the derived list to be persisted, saves=%d", len(store.saved))
		}
	})

	t.Run("NoPlanNoList", func(t *testing.T) {
		svc := NewService(NewEngine(), &fakeListStore{}, &fakePlanSource{})

		got, err := svc.GetOrDerive(ctx, "user-1")
		if err != nil {
			t.Fatalf("GetOrDerive failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil for a user with no plan, got %+v", got)
		}
	})

	t.Run("PlanSourceError", func(t *testing.T) {
		svc := NewService(NewEngine(), &fakeListStore{}, &fakePlanSource{err: errors.New("db down")})

		if _, err := svc.GetOrDerive(ctx, "user-1"); err == nil {
			t.Error("Expected the plan source error to surface")
		}
	})
}

func TestDeriveForPlan(t *testing.T) {
	store := &fakeListStore{}
	svc := NewService(NewEngine(), store, &fakePlanSource{})

	plan := planWithMeals(map[string][]string{"lunch": {"2 cups mixed greens"}})
	got, err := svc.DeriveForPlan(context.Background(), "user-1", 42, plan)
	if err != nil {
		t.Fatalf("DeriveForPlan failed: %v", err)
	}

	if len(store.deleted) != 1 || store.deleted[0] != 42 {
		t.Errorf("Expected the previous list for plan 42 to be removed, got %v", store.deleted)
	}
	if got.List.TotalItems != 1 {
		t.Errorf("Expected 1 item, got %d", got.List.TotalItems)
	}
}

func TestServiceMutations(t *testing.T) {
	ctx := context.Background()

	newStore := func() *fakeListStore {
		return &fakeListStore{stored: &StoredList{
			ID:     1,
			UserID: "user-1",
			List: List{
				Categories: map[string][]Item{
					CategoryFruits: {{Name: "apple"}, {Name: "banana"}},
				},
				TotalItems:  2,
				GeneratedAt: time.Now().UTC(),
			},
		}}
	}

	t.Run("Toggle", func(t *testing.T) {
		store := newStore()
		svc := NewService(NewEngine(), store, &fakePlanSource{})

		got, err := svc.Toggle(ctx, "user-1", CategoryFruits, 0)
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		if !got.List.Categories[CategoryFruits][0].Checked {
			t.Error("Expected the item to be checked")
		}
		if len(store.updated) != 1 {
			t.Errorf("Expected the change to be persisted, updates=%d", len(store.updated))
		}
	})

	t.Run("ToggleOutOfRange", func(t *testing.T) {
		store := newStore()
		svc := NewService(NewEngine(), store, &fakePlanSource{})

		if _, err := svc.Toggle(ctx, "user-1", CategoryFruits, 9); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
		}
		if len(store.updated) != 0 {
			t.Error("Expected no persistence on a failed mutation")
		}
	})

	t.Run("SetAll", func(t *testing.T) {
		store := newStore()
		svc := NewService(NewEngine(), store, &fakePlanSource{})

		got, err := svc.SetAll(ctx, "user-1", CategoryFruits, true)
		if err != nil {
			t.Fatalf("SetAll failed: %v", err)
		}
		for i, item := range got.List.Categories[CategoryFruits] {
			if !item.Checked {
				t.Errorf("Expected item %d to be checked", i)
			}
		}
	})

	t.Run("Remove", func(t *testing.T) {
		store := newStore()
		svc := NewService(NewEngine(), store, &fakePlanSource{})

		got, err := svc.Remove(ctx, "user-1", CategoryFruits, 0)
		if err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		fruits := got.List.Categories[CategoryFruits]
		if len(fruits) != 1 || fruits[0].Name != "banana" {
			t.Errorf("Expected only 'banana' left, got %+v", fruits)
		}
	})

	t.Run("NoListToMutate", func(t *testing.T) {
		svc := NewService(NewEngine(), &fakeListStore{}, &fakePlanSource{})
		if _, err := svc.Toggle(ctx, "user-1", CategoryFruits, 0); err == nil {
			t.Error("Expected an error when no list exists")
		}
	})
}
