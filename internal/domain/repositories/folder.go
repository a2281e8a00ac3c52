package repositories

import (
	"context"

	"tempo/internal/domain/models"
)

// FolderRepository defines data access operations for folders
type FolderRepository interface {
	// Create creates a new folder
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder by ID
	GetByID(ctx context.Context, id, userID string) (*models.Folder, error)

	// Update updates a folder
	Update(ctx context.Context, folder *models.Folder) error

	// Delete deletes a folder and, through ON DELETE CASCADE, its
	// descendant folders, their modules and their entries
	Delete(ctx context.Context, id, userID string) error

	// CountSiblings counts folders sharing a parent (order assignment)
	CountSiblings(ctx context.Context, parentID *string, userID string) (int, error)

	// GetAllByUser retrieves all folders for a user (flat list)
	GetAllByUser(ctx context.Context, userID string) ([]models.Folder, error)
}
