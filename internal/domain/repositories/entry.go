package repositories

import (
	"context"

	"tempo/internal/domain/models"
)

// EntryRepository defines data access operations for time entries.
// Implementations own the hour/minute conversion: durations are stored
// as whole minutes and exposed as hours.
type EntryRepository interface {
	// Create creates a new entry
	Create(ctx context.Context, entry *models.Entry) error

	// GetByID retrieves an entry by ID
	GetByID(ctx context.Context, id, userID string) (*models.Entry, error)

	// Update updates an entry (created_at is immutable)
	Update(ctx context.Context, entry *models.Entry) error

	// Delete deletes an entry
	Delete(ctx context.Context, id, userID string) error

	// GetAllByUser retrieves all entries for a user, date descending
	GetAllByUser(ctx context.Context, userID string) ([]models.Entry, error)
}
