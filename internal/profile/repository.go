package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	profiledb "nutriplan/internal/profile/db"
)

// Repository handles persistence of user profiles.
type Repository struct {
	queries *profiledb.Queries
	db      *sql.DB
}

// NewRepository creates a new profile repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: profiledb.New(d),
		db:      d,
	}
}

// Save inserts or replaces the user's profile document.
func (r *Repository) Save(ctx context.Context, userID string, p *Profile) error {
	profileJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	return r.queries.UpsertProfile(ctx, profiledb.UpsertProfileParams{
		UserID:      userID,
		ProfileJson: string(profileJSON),
		UpdatedAt:   time.Now().UTC(),
	})
}

// GetByUserID retrieves the user's profile, or nil when none has been saved.
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*Profile, error) {
	dbProfile, err := r.queries.GetProfileByUserID(ctx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No profile found
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal([]byte(dbProfile.ProfileJson), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile document: %w", err)
	}
	return &p, nil
}
