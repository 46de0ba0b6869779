package grocery

import (
	"context"
	"fmt"

	"nutriplan/internal/mealplan"
)

// PlanSource is any provider of the user's latest meal plan.
type PlanSource interface {
	LatestByUserID(ctx context.Context, userID string) (*mealplan.Stored, error)
}

// ListStore is the persistence surface the service needs.
type ListStore interface {
	Save(ctx context.Context, userID string, planID int64, list *List) (int64, error)
	GetLatestByUserID(ctx context.Context, userID string) (*StoredList, error)
	Update(ctx context.Context, id int64, list *List) error
	DeleteByPlanID(ctx context.Context, planID int64) error
}

// Service ties the pure engine to persistence. It owns the
// list-missing → latest-plan → derive → save recovery chain so the fallback
// is one visible function instead of nested error handling at call sites.
type Service struct {
	engine *Engine
	repo   ListStore
	plans  PlanSource
}

// NewService creates a grocery Service.
func NewService(engine *Engine, repo ListStore, plans PlanSource) *Service {
	return &Service{
		engine: engine,
		repo:   repo,
		plans:  plans,
	}
}

// GetOrDerive returns the user's current grocery list, deriving and saving
// one from the latest meal plan when none is stored. It returns nil when the
// user has no meal plan at all; that is a "nothing to show" state, not an
// error.
func (s *Service) GetOrDerive(ctx context.Context, userID string) (*StoredList, error) {
	stored, err := s.repo.GetLatestByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		return stored, nil
	}

	plan, err := s.plans.LatestByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest meal plan: %w", err)
	}
	if plan == nil {
		return nil, nil
	}

	list := s.engine.DeriveFromPlan(&plan.Plan)
	id, err := s.repo.Save(ctx, userID, plan.ID, list)
	if err != nil {
		return nil, fmt.Errorf("failed to save derived grocery list: %w", err)
	}

	return &StoredList{
		ID:        id,
		UserID:    userID,
		PlanID:    plan.ID,
		List:      *list,
		CreatedAt: list.GeneratedAt,
		UpdatedAt: list.GeneratedAt,
	}, nil
}

// DeriveForPlan derives a fresh list for a specific plan and persists it,
// replacing any previous list for that plan.
func (s *Service) DeriveForPlan(ctx context.Context, userID string, planID int64, plan *mealplan.Plan) (*StoredList, error) {
	if err := s.repo.DeleteByPlanID(ctx, planID); err != nil {
		return nil, fmt.Errorf("failed to remove previous grocery list: %w", err)
	}

	list := s.engine.DeriveFromPlan(plan)
	id, err := s.repo.Save(ctx, userID, planID, list)
	if err != nil {
		return nil, fmt.Errorf("failed to save grocery list: %w", err)
	}

	return &StoredList{
		ID:        id,
		UserID:    userID,
		PlanID:    planID,
		List:      *list,
		CreatedAt: list.GeneratedAt,
		UpdatedAt: list.GeneratedAt,
	}, nil
}

// Toggle flips one item's checked state and persists the document.
func (s *Service) Toggle(ctx context.Context, userID, category string, index int) (*StoredList, error) {
	return s.mutate(ctx, userID, func(list *List) error {
		return ToggleItem(list, category, index)
	})
}

// SetAll checks or unchecks every item in a category and persists the
// document.
func (s *Service) SetAll(ctx context.Context, userID, category string, checked bool) (*StoredList, error) {
	return s.mutate(ctx, userID, func(list *List) error {
		ToggleAll(list, category, checked)
		return nil
	})
}

// Remove deletes one item and persists the document.
func (s *Service) Remove(ctx context.Context, userID, category string, index int) (*StoredList, error) {
	return s.mutate(ctx, userID, func(list *List) error {
		return RemoveItem(list, category, index)
	})
}

func (s *Service) mutate(ctx context.Context, userID string, op func(*List) error) (*StoredList, error) {
	stored, err := s.repo.GetLatestByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("no grocery list exists for user %s", userID)
	}

	if err := op(&stored.List); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, stored.ID, &stored.List); err != nil {
		return nil, fmt.Errorf("failed to save grocery list changes: %w", err)
	}
	return stored, nil
}
