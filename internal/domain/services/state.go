package services

import (
	"context"

	"tempo/internal/domain/models"
)

// StateService assembles the full per-user dataset in one call; the
// client swaps it into its snapshot atomically.
type StateService interface {
	GetState(ctx context.Context, userID string) (*models.State, error)
}

// ProfileService defines business operations for user profiles
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) (*models.Profile, error)
}
