package services

import (
	"context"

	"tempo/internal/domain/models"
)

// FolderService defines business operations for folders
type FolderService interface {
	// CreateFolder creates a folder; the server assigns id and sort
	// order (current sibling count)
	CreateFolder(ctx context.Context, req *models.CreateFolderRequest) (*models.Folder, error)

	// GetFolder retrieves a folder by ID
	GetFolder(ctx context.Context, id, userID string) (*models.Folder, error)

	// UpdateFolder renames, reorders or moves a folder; moves into the
	// folder's own subtree are rejected
	UpdateFolder(ctx context.Context, id string, req *models.UpdateFolderRequest) (*models.Folder, error)

	// DeleteFolder deletes a folder and everything under it
	DeleteFolder(ctx context.Context, id, userID string) error
}
