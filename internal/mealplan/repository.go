package mealplan

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	plandb "nutriplan/internal/mealplan/db"
)

// Stored is a meal plan as persisted, with its row identity and the
// preferences it was generated from.
type Stored struct {
	ID          int64       `json:"id"`
	UserID      string      `json:"user_id"`
	Preferences Preferences `json:"preferences"`
	Plan        Plan        `json:"plan"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Repository handles persistence of meal plans.
type Repository struct {
	queries *plandb.Queries
	db      *sql.DB
}

// NewRepository creates a new meal plan repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: plandb.New(d),
		db:      d,
	}
}

// Save persists a generated plan together with its preferences.
func (r *Repository) Save(ctx context.Context, userID string, prefs Preferences, plan *Plan) (int64, error) {
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal preferences: %w", err)
	}
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal meal plan: %w", err)
	}

	id, err := r.queries.InsertMealPlan(ctx, plandb.InsertMealPlanParams{
		UserID:      userID,
		Preferences: string(prefsJSON),
		PlanData:    string(planJSON),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert meal plan: %w", err)
	}
	return id, nil
}

// GetByID retrieves a meal plan by its row ID, or nil when it does not exist.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Stored, error) {
	dbPlan, err := r.queries.GetMealPlanByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No meal plan found
		}
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}
	return mapStored(dbPlan)
}

// LatestByUserID retrieves the user's most recent meal plan, or nil when the
// user has never generated one.
func (r *Repository) LatestByUserID(ctx context.Context, userID string) (*Stored, error) {
	dbPlan, err := r.queries.GetLatestMealPlanByUserID(ctx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No meal plan found
		}
		return nil, fmt.Errorf("failed to get latest meal plan: %w", err)
	}
	return mapStored(dbPlan)
}

// ListRecent retrieves the user's most recent meal plans, newest first.
func (r *Repository) ListRecent(ctx context.Context, userID string, limit int) ([]Stored, error) {
	dbPlans, err := r.queries.ListRecentMealPlansByUserID(ctx, plandb.ListRecentMealPlansByUserIDParams{
		UserID: userID,
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}

	plans := make([]Stored, 0, len(dbPlans))
	for _, dbPlan := range dbPlans {
		stored, err := mapStored(dbPlan)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *stored)
	}
	return plans, nil
}

func mapStored(dbPlan plandb.MealPlan) (*Stored, error) {
	var prefs Preferences
	if err := json.Unmarshal([]byte(dbPlan.Preferences), &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan preferences: %w", err)
	}
	var plan Plan
	if err := json.Unmarshal([]byte(dbPlan.PlanData), &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan document: %w", err)
	}

	return &Stored{
		ID:          dbPlan.ID,
		UserID:      dbPlan.UserID,
		Preferences: prefs,
		Plan:        plan,
		CreatedAt:   dbPlan.CreatedAt,
	}, nil
}
