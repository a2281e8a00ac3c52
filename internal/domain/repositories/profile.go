package repositories

import (
	"context"

	"tempo/internal/domain/models"
)

// ProfileRepository defines data access operations for user profiles
type ProfileRepository interface {
	// GetOrCreate retrieves the profile, creating a blank one on first use
	GetOrCreate(ctx context.Context, userID string) (*models.Profile, error)

	// Update updates the profile
	Update(ctx context.Context, profile *models.Profile) error
}
