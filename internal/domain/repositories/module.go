package repositories

import (
	"context"

	"tempo/internal/domain/models"
)

// ModuleRepository defines data access operations for modules
type ModuleRepository interface {
	// Create creates a new module
	Create(ctx context.Context, module *models.Module) error

	// GetByID retrieves a module by ID
	GetByID(ctx context.Context, id, userID string) (*models.Module, error)

	// Update updates a module
	Update(ctx context.Context, module *models.Module) error

	// Delete deletes a module and cascades its entries
	Delete(ctx context.Context, id, userID string) error

	// CountInFolder counts modules in a folder (order assignment)
	CountInFolder(ctx context.Context, folderID, userID string) (int, error)

	// GetAllByUser retrieves all modules for a user (flat list)
	GetAllByUser(ctx context.Context, userID string) ([]models.Module, error)
}
