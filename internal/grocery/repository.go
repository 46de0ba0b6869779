package grocery

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	grocerydb "nutriplan/internal/grocery/db"
)

// StoredList is a grocery list document as persisted, with its row identity.
type StoredList struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	PlanID    int64     `json:"plan_id"`
	List      List      `json:"grocery_json"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository handles persistence of grocery lists.
type Repository struct {
	queries *grocerydb.Queries
	db      *sql.DB
}

// NewRepository creates a new grocery list repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: grocerydb.New(d),
		db:      d,
	}
}

// Save creates a new grocery list document for a meal plan.
func (r *Repository) Save(ctx context.Context, userID string, planID int64, list *List) (int64, error) {
	listJSON, err := json.Marshal(list)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal grocery list: %w", err)
	}

	now := time.Now().UTC()
	id, err := r.queries.InsertGroceryList(ctx, grocerydb.InsertGroceryListParams{
		UserID:      userID,
		PlanID:      planID,
		GroceryJson: string(listJSON),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert grocery list: %w", err)
	}

	return id, nil
}

// GetByPlanID retrieves the grocery list for a meal plan, or nil when none
// has been derived yet.
func (r *Repository) GetByPlanID(ctx context.Context, planID int64) (*StoredList, error) {
	dbList, err := r.queries.GetGroceryListByPlanID(ctx, planID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No grocery list found
		}
		return nil, fmt.Errorf("failed to get grocery list by plan ID: %w", err)
	}
	return mapStoredList(dbList)
}

// GetLatestByUserID retrieves the most recently created grocery list for a
// user, or nil when the user has none.
func (r *Repository) GetLatestByUserID(ctx context.Context, userID string) (*StoredList, error) {
	dbList, err := r.queries.GetLatestGroceryListByUserID(ctx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No grocery list found
		}
		return nil, fmt.Errorf("failed to get latest grocery list: %w", err)
	}
	return mapStoredList(dbList)
}

// Update replaces the stored document for an existing list.
func (r *Repository) Update(ctx context.Context, id int64, list *List) error {
	listJSON, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal grocery list: %w", err)
	}

	return r.queries.UpdateGroceryListJson(ctx, grocerydb.UpdateGroceryListJsonParams{
		GroceryJson: string(listJSON),
		UpdatedAt:   time.Now().UTC(),
		ID:          id,
	})
}

// DeleteByPlanID deletes the grocery list for a meal plan.
func (r *Repository) DeleteByPlanID(ctx context.Context, planID int64) error {
	return r.queries.DeleteGroceryListByPlanID(ctx, planID)
}

func mapStoredList(dbList grocerydb.GroceryList) (*StoredList, error) {
	var list List
	if err := json.Unmarshal([]byte(dbList.GroceryJson), &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal grocery list document: %w", err)
	}
	if list.Categories == nil {
		list.Categories = make(map[string][]Item)
	}

	return &StoredList{
		ID:        dbList.ID,
		UserID:    dbList.UserID,
		PlanID:    dbList.PlanID,
		List:      list,
		CreatedAt: dbList.CreatedAt,
		UpdatedAt: dbList.UpdatedAt,
	}, nil
}
